package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/complyaudit/complyaudit/internal/domain/remediation"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_LoadEmpty(t *testing.T) {
	s := newTestStore(t)

	states, err := s.Load(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if states == nil {
		t.Fatal("Load() returned nil map for unknown framework")
	}
	if len(states) != 0 {
		t.Errorf("Load() returned %d entries, want 0", len(states))
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	// Timestamps survive a round trip at second precision only.
	acceptedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	appliedAt := acceptedAt.Add(5 * time.Minute)

	tests := []struct {
		name   string
		states remediation.StateMap
	}{
		{name: "empty map", states: remediation.StateMap{}},
		{
			name: "accepted only",
			states: remediation.StateMap{
				"f-1": &remediation.RemediationState{
					FindingID:  "f-1",
					Acceptance: &remediation.Acceptance{Actor: "alice", At: acceptedAt},
				},
			},
		},
		{
			name: "accepted and applied",
			states: remediation.StateMap{
				"f-1": &remediation.RemediationState{
					FindingID:  "f-1",
					Acceptance: &remediation.Acceptance{Actor: "alice", At: acceptedAt},
				},
				"f-2": &remediation.RemediationState{
					FindingID:   "f-2",
					Acceptance:  &remediation.Acceptance{Actor: "alice", At: acceptedAt},
					Application: &remediation.Application{Actor: "bob", At: appliedAt, FixType: "patch"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			ctx := context.Background()

			if err := s.Save(ctx, "fw", tt.states); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := s.Load(ctx, "fw")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(got) != len(tt.states) {
				t.Fatalf("Load() returned %d entries, want %d", len(got), len(tt.states))
			}
			for id, want := range tt.states {
				st, ok := got[id]
				if !ok {
					t.Fatalf("finding %s missing after round trip", id)
				}
				if st.State() != want.State() {
					t.Errorf("finding %s state = %s, want %s", id, st.State(), want.State())
				}
				if want.Acceptance != nil {
					if st.Acceptance.Actor != want.Acceptance.Actor || !st.Acceptance.At.Equal(want.Acceptance.At) {
						t.Errorf("finding %s acceptance = %+v, want %+v", id, st.Acceptance, want.Acceptance)
					}
				}
				if want.Application != nil {
					if st.Application.FixType != want.Application.FixType || !st.Application.At.Equal(want.Application.At) {
						t.Errorf("finding %s application = %+v, want %+v", id, st.Application, want.Application)
					}
				}
			}
		})
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second).UTC()

	first := remediation.StateMap{
		"f-1": &remediation.RemediationState{FindingID: "f-1", Acceptance: &remediation.Acceptance{Actor: "a", At: now}},
		"f-2": &remediation.RemediationState{FindingID: "f-2", Acceptance: &remediation.Acceptance{Actor: "a", At: now}},
	}
	if err := s.Save(ctx, "fw", first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := remediation.StateMap{
		"f-3": &remediation.RemediationState{FindingID: "f-3", Acceptance: &remediation.Acceptance{Actor: "b", At: now}},
	}
	if err := s.Save(ctx, "fw", second); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := s.Load(ctx, "fw")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Load() returned %d entries, want full overwrite down to 1", len(got))
	}
	if _, ok := got["f-3"]; !ok {
		t.Error("f-3 missing after overwrite")
	}
}

func TestStore_SaveRejectsAppliedWithoutAcceptance(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	bad := remediation.StateMap{
		"f-1": &remediation.RemediationState{
			FindingID:   "f-1",
			Application: &remediation.Application{Actor: "a", At: now, FixType: "patch"},
		},
	}
	if err := s.Save(ctx, "fw", bad); err == nil {
		t.Fatal("Save() accepted an applied state without acceptance")
	}

	// Rejected transaction leaves nothing behind.
	got, err := s.Load(ctx, "fw")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() returned %d entries after rejected save, want 0", len(got))
	}
}

func TestStore_FrameworksAreIsolated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second).UTC()

	states := remediation.StateMap{
		"f-1": &remediation.RemediationState{FindingID: "f-1", Acceptance: &remediation.Acceptance{Actor: "a", At: now}},
	}
	if err := s.Save(ctx, "fw-a", states); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Save(ctx, "fw-b", states); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := s.Clear(ctx, "fw-a"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	a, err := s.Load(ctx, "fw-a")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(a) != 0 {
		t.Errorf("fw-a has %d entries after clear, want 0", len(a))
	}
	b, err := s.Load(ctx, "fw-b")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(b) != 1 {
		t.Errorf("fw-b has %d entries, clear leaked across namespaces", len(b))
	}
}

func TestStore_Snapshots(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.AddDate(0, 0, i)
		if err := s.SaveSnapshot(ctx, at, map[string]int{"fw": 70 + i, "other": 50}); err != nil {
			t.Fatalf("SaveSnapshot() error = %v", err)
		}
	}

	points, err := s.ListSnapshots(ctx, "fw", 2)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("ListSnapshots() returned %d points, want limit of 2", len(points))
	}
	if points[0].Score != 72 || points[1].Score != 71 {
		t.Errorf("scores = %d,%d, want newest first 72,71", points[0].Score, points[1].Score)
	}
	if !points[0].TakenAt.After(points[1].TakenAt) {
		t.Error("snapshots not ordered newest first")
	}

	all, err := s.ListSnapshots(ctx, "fw", 0)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListSnapshots() with default limit returned %d points, want 3", len(all))
	}
}

func TestStore_Ping(t *testing.T) {
	s := newTestStore(t)
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
