package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/remediation"
	"github.com/complyaudit/complyaudit/internal/pkg/metrics"
)

// Store persists remediation overlay state and posture snapshots. It
// implements remediation.Store and the posture service's trend store.
type Store struct {
	sql *sql.DB
}

// Open opens (or creates) the database at path and runs migrations
func Open(path string) (*Store, error) {
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := d.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, err
	}
	s := &Store{sql: d}
	if err := s.migrate(); err != nil {
		_ = d.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error { return s.sql.Close() }

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error { return s.sql.PingContext(ctx) }

func (s *Store) migrate() error {
	_, err := s.sql.Exec(`
CREATE TABLE IF NOT EXISTS remediation_states (
    framework_key TEXT NOT NULL,
    finding_id TEXT NOT NULL,
    accepted_at INTEGER,
    accepted_by TEXT,
    applied_at INTEGER,
    applied_by TEXT,
    fix_type TEXT,
    PRIMARY KEY (framework_key, finding_id)
);

CREATE TABLE IF NOT EXISTS posture_snapshots (
    taken_at INTEGER NOT NULL,
    framework_key TEXT NOT NULL,
    score INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posture_snapshots_framework
    ON posture_snapshots (framework_key, taken_at);
`)
	return err
}

// Load returns the full state map for a framework. An unknown framework key
// yields an empty map.
func (s *Store) Load(ctx context.Context, frameworkKey string) (remediation.StateMap, error) {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("load", time.Since(start)) }()

	rows, err := s.sql.QueryContext(ctx, `
SELECT finding_id, accepted_at, accepted_by, applied_at, applied_by, fix_type
FROM remediation_states WHERE framework_key=?
`, frameworkKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	states := make(remediation.StateMap)
	for rows.Next() {
		var (
			findingID            string
			acceptedAt, appliedAt sql.NullInt64
			acceptedBy, appliedBy sql.NullString
			fixType              sql.NullString
		)
		if err := rows.Scan(&findingID, &acceptedAt, &acceptedBy, &appliedAt, &appliedBy, &fixType); err != nil {
			return nil, err
		}
		st := &remediation.RemediationState{FindingID: findingID}
		if acceptedAt.Valid {
			st.Acceptance = &remediation.Acceptance{
				Actor: acceptedBy.String,
				At:    time.Unix(acceptedAt.Int64, 0).UTC(),
			}
		}
		if appliedAt.Valid {
			st.Application = &remediation.Application{
				Actor:   appliedBy.String,
				At:      time.Unix(appliedAt.Int64, 0).UTC(),
				FixType: fixType.String,
			}
		}
		states[findingID] = st
	}
	return states, rows.Err()
}

// Save overwrites the framework's full state map in a single transaction, so
// a failed save leaves the prior state intact.
func (s *Store) Save(ctx context.Context, frameworkKey string, states remediation.StateMap) error {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("save", time.Since(start)) }()

	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM remediation_states WHERE framework_key=?`, frameworkKey); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO remediation_states (framework_key, finding_id, accepted_at, accepted_by, applied_at, applied_by, fix_type)
VALUES (?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for findingID, st := range states {
		var (
			acceptedAt, appliedAt interface{}
			acceptedBy, appliedBy interface{}
			fixType               interface{}
		)
		if st.Acceptance != nil {
			acceptedAt = st.Acceptance.At.Unix()
			acceptedBy = st.Acceptance.Actor
		}
		if st.Application != nil {
			if st.Acceptance == nil {
				return fmt.Errorf("finding %s applied without acceptance", findingID)
			}
			appliedAt = st.Application.At.Unix()
			appliedBy = st.Application.Actor
			fixType = st.Application.FixType
		}
		if _, err := stmt.ExecContext(ctx, frameworkKey, findingID, acceptedAt, acceptedBy, appliedAt, appliedBy, fixType); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Clear wipes the framework's namespace
func (s *Store) Clear(ctx context.Context, frameworkKey string) error {
	start := time.Now()
	defer func() { metrics.RecordStoreOperation("clear", time.Since(start)) }()

	_, err := s.sql.ExecContext(ctx, `DELETE FROM remediation_states WHERE framework_key=?`, frameworkKey)
	return err
}

// SaveSnapshot records one posture snapshot row per framework score
func (s *Store) SaveSnapshot(ctx context.Context, at time.Time, scores map[string]int) error {
	tx, err := s.sql.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO posture_snapshots (taken_at, framework_key, score) VALUES (?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, score := range scores {
		if _, err := stmt.ExecContext(ctx, at.Unix(), key, score); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListSnapshots returns up to limit snapshots for a framework, newest first
func (s *Store) ListSnapshots(ctx context.Context, frameworkKey string, limit int) ([]compliance.TrendPoint, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := s.sql.QueryContext(ctx, `
SELECT taken_at, framework_key, score FROM posture_snapshots
WHERE framework_key=? ORDER BY taken_at DESC LIMIT ?
`, frameworkKey, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []compliance.TrendPoint
	for rows.Next() {
		var takenAt int64
		var p compliance.TrendPoint
		if err := rows.Scan(&takenAt, &p.FrameworkKey, &p.Score); err != nil {
			return nil, err
		}
		p.TakenAt = time.Unix(takenAt, 0).UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}
