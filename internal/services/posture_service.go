package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
	"github.com/complyaudit/complyaudit/internal/domain/remediation"
	"github.com/complyaudit/complyaudit/internal/pkg/errors"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/pkg/metrics"
)

// TrendStore records and serves posture snapshots
type TrendStore interface {
	SaveSnapshot(ctx context.Context, at time.Time, scores map[string]int) error
	ListSnapshots(ctx context.Context, frameworkKey string, limit int) ([]compliance.TrendPoint, error)
}

// PostureService implements compliance.Service over the catalog, the
// recommendation library, and the remediation overlay.
type PostureService struct {
	catalog *compliance.Catalog
	library *recommendation.Library
	store   remediation.Store
	trends  TrendStore
	logger  *logger.Logger
	now     func() time.Time

	// countApplied enables the effective re-scoring policy: applied findings
	// count as passed controls in a separate effective score field.
	countApplied bool
}

// PostureOption configures a PostureService
type PostureOption func(*PostureService)

// WithAppliedCountedAsPassed enables the effective re-scoring policy
func WithAppliedCountedAsPassed() PostureOption {
	return func(s *PostureService) { s.countApplied = true }
}

// WithTrendStore attaches a snapshot store for trend queries
func WithTrendStore(ts TrendStore) PostureOption {
	return func(s *PostureService) { s.trends = ts }
}

// NewPostureService creates a posture service
func NewPostureService(
	catalog *compliance.Catalog,
	library *recommendation.Library,
	store remediation.Store,
	log *logger.Logger,
	opts ...PostureOption,
) *PostureService {
	s := &PostureService{
		catalog: catalog,
		library: library,
		store:   store,
		logger:  log,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListFrameworks returns summaries for every framework in the catalog
func (s *PostureService) ListFrameworks(ctx context.Context) ([]*compliance.FrameworkSummary, error) {
	out := make([]*compliance.FrameworkSummary, 0, s.catalog.Len())
	for _, f := range s.catalog.List() {
		summary, err := s.summarize(ctx, f)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

// GetFramework returns one framework's summary
func (s *PostureService) GetFramework(ctx context.Context, key string) (*compliance.FrameworkSummary, error) {
	f, ok := s.catalog.Get(key)
	if !ok {
		return nil, errors.NotFound("framework " + key)
	}
	return s.summarize(ctx, f)
}

func (s *PostureService) summarize(ctx context.Context, f *compliance.Framework) (*compliance.FrameworkSummary, error) {
	card, err := compliance.ScoreFramework(f)
	if err != nil {
		return nil, errors.DegenerateInput(fmt.Sprintf("framework %s has no controls to score", f.Key))
	}
	metrics.RecordScoringEvaluation(f.Key, card.Status)

	summary := &compliance.FrameworkSummary{
		Key:       f.Key,
		Name:      f.Name,
		FullName:  f.FullName,
		Scorecard: card,
	}

	if s.countApplied {
		applied, err := s.appliedCount(ctx, f)
		if err != nil {
			return nil, err
		}
		effective, err := compliance.ScoreFrameworkEffective(f, applied)
		if err != nil {
			return nil, errors.DegenerateInput(fmt.Sprintf("framework %s has no controls to score", f.Key))
		}
		summary.EffectiveScore = &effective.Score
		summary.EffectiveStatus = effective.Status
	}

	return summary, nil
}

func (s *PostureService) appliedCount(ctx context.Context, f *compliance.Framework) (int, error) {
	states, err := s.store.Load(ctx, f.Key)
	if err != nil {
		return 0, errors.PersistenceError("failed to load remediation state", err)
	}
	var applied int
	for _, fd := range f.FailingFindings() {
		if states.StateOf(fd.ID) == remediation.StateApplied {
			applied++
		}
	}
	return applied, nil
}

// Domains returns a framework's domains with independently rounded display
// percentages
func (s *PostureService) Domains(ctx context.Context, key string) ([]*compliance.DomainView, error) {
	f, ok := s.catalog.Get(key)
	if !ok {
		return nil, errors.NotFound("framework " + key)
	}

	out := make([]*compliance.DomainView, 0, len(f.Domains))
	for _, d := range f.Domains {
		pct, err := compliance.DomainPercent(d)
		if err != nil {
			return nil, errors.DegenerateInput(fmt.Sprintf("domain %q has no controls to score", d.Name))
		}
		out = append(out, &compliance.DomainView{Domain: d, DisplayPercent: pct})
	}
	return out, nil
}

// Findings returns a framework's findings with workflow overlay and
// resolved recommendations
func (s *PostureService) Findings(ctx context.Context, key string) ([]*compliance.FindingView, error) {
	f, ok := s.catalog.Get(key)
	if !ok {
		return nil, errors.NotFound("framework " + key)
	}

	states, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, errors.PersistenceError("failed to load remediation state", err)
	}

	out := make([]*compliance.FindingView, 0, len(f.Findings))
	for _, fd := range f.Findings {
		view := &compliance.FindingView{
			Finding:       fd,
			WorkflowState: states.StateOf(fd.ID),
		}
		view.DisplayStatus = displayStatus(fd, view.WorkflowState)

		if fd.IsFailing() {
			rec, err := s.library.Get(fd.RecommendationKey)
			if err != nil {
				return nil, errors.DataIntegrity(
					fmt.Sprintf("finding %s references missing recommendation %q", fd.ID, fd.RecommendationKey), err)
			}
			view.Recommendation = rec
		}
		out = append(out, view)
	}
	return out, nil
}

// displayStatus overlays the workflow state onto the scan result: an applied
// finding renders as Fixed while the underlying status stays fail.
func displayStatus(f compliance.Finding, state remediation.WorkflowState) string {
	if f.IsFailing() && state == remediation.StateApplied {
		return "Fixed"
	}
	if f.IsFailing() {
		return "Fail"
	}
	return "Pass"
}

// Overview aggregates posture across the whole catalog
func (s *PostureService) Overview(ctx context.Context) (*compliance.Overview, error) {
	frameworks := s.catalog.List()
	if len(frameworks) == 0 {
		return nil, errors.DegenerateInput("catalog has no frameworks")
	}

	ov := &compliance.Overview{
		Frameworks:     len(frameworks),
		OpenBySeverity: make(map[string]int),
	}

	var scoreSum int
	for _, f := range frameworks {
		card, err := compliance.ScoreFramework(f)
		if err != nil {
			return nil, errors.DegenerateInput(fmt.Sprintf("framework %s has no controls to score", f.Key))
		}
		scoreSum += card.Score
		ov.TotalControls += card.TotalControls
		ov.TotalPassed += card.Passed
		if card.Status == compliance.StatusCompliant {
			ov.Compliant++
		}

		states, err := s.store.Load(ctx, f.Key)
		if err != nil {
			return nil, errors.PersistenceError("failed to load remediation state", err)
		}
		for _, fd := range f.FailingFindings() {
			if states.StateOf(fd.ID) != remediation.StateApplied {
				ov.OpenBySeverity[fd.Severity]++
			}
		}
	}

	ov.AverageScore = int(math.Round(float64(scoreSum) / float64(len(frameworks))))
	ov.OverallPercent = int(math.Round(float64(ov.TotalPassed) / float64(ov.TotalControls) * 100))
	return ov, nil
}

// Trend returns recorded posture snapshots for a framework, newest first
func (s *PostureService) Trend(ctx context.Context, key string, limit int) ([]compliance.TrendPoint, error) {
	if s.trends == nil {
		return nil, errors.ServiceUnavailable("trend snapshots are not enabled")
	}
	if _, ok := s.catalog.Get(key); !ok {
		return nil, errors.NotFound("framework " + key)
	}
	points, err := s.trends.ListSnapshots(ctx, key, limit)
	if err != nil {
		return nil, errors.PersistenceError("failed to load posture snapshots", err)
	}
	return points, nil
}

// Snapshot records the current score of every framework
func (s *PostureService) Snapshot(ctx context.Context) error {
	if s.trends == nil {
		return errors.ServiceUnavailable("trend snapshots are not enabled")
	}

	scores := make(map[string]int, s.catalog.Len())
	for _, f := range s.catalog.List() {
		card, err := compliance.ScoreFramework(f)
		if err != nil {
			return errors.DegenerateInput(fmt.Sprintf("framework %s has no controls to score", f.Key))
		}
		scores[f.Key] = card.Score
	}

	if err := s.trends.SaveSnapshot(ctx, s.now().UTC(), scores); err != nil {
		return errors.PersistenceError("failed to record posture snapshot", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"frameworks": len(scores),
	}).Info("Posture snapshot recorded")
	return nil
}
