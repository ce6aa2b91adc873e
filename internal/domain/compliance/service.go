package compliance

import (
	"context"

	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
	"github.com/complyaudit/complyaudit/internal/domain/remediation"
)

// FrameworkSummary is a framework's computed posture for the rendering and
// export collaborators. EffectiveScore is present only when the policy that
// counts applied findings as passed is enabled; the scan-derived Scorecard
// is never replaced.
type FrameworkSummary struct {
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	FullName  string     `json:"full_name"`
	Scorecard *Scorecard `json:"scorecard"`

	EffectiveScore  *int   `json:"effective_score,omitempty"`
	EffectiveStatus string `json:"effective_status,omitempty"`
}

// DomainView is a domain with its independently rounded display percentage
type DomainView struct {
	Domain
	DisplayPercent int `json:"display_percent"`
}

// FindingView is a finding with its workflow overlay and resolved
// recommendation. DisplayStatus shows "Fixed" for applied findings while
// the underlying Status field keeps the original scan result.
type FindingView struct {
	Finding
	WorkflowState  remediation.WorkflowState      `json:"workflow_state"`
	DisplayStatus  string                         `json:"display_status"`
	Recommendation *recommendation.Recommendation `json:"recommendation,omitempty"`
}

// Overview aggregates posture across all frameworks
type Overview struct {
	Frameworks     int            `json:"frameworks"`
	Compliant      int            `json:"compliant"`
	AverageScore   int            `json:"average_score"`
	TotalControls  int            `json:"total_controls"`
	TotalPassed    int            `json:"total_passed"`
	OverallPercent int            `json:"overall_percent"`
	OpenBySeverity map[string]int `json:"open_by_severity"`
}

// Service exposes the read side of the posture assessment
type Service interface {
	// ListFrameworks returns summaries for every framework in the catalog.
	ListFrameworks(ctx context.Context) ([]*FrameworkSummary, error)

	// GetFramework returns one framework's summary.
	GetFramework(ctx context.Context, key string) (*FrameworkSummary, error)

	// Domains returns a framework's domains with display percentages.
	Domains(ctx context.Context, key string) ([]*DomainView, error)

	// Findings returns a framework's findings with the workflow overlay and
	// resolved recommendations.
	Findings(ctx context.Context, key string) ([]*FindingView, error)

	// Overview aggregates posture across the whole catalog.
	Overview(ctx context.Context) (*Overview, error)

	// Trend returns recorded posture snapshots for a framework, newest first.
	Trend(ctx context.Context, key string, limit int) ([]TrendPoint, error)

	// Snapshot records the current scores of all frameworks.
	Snapshot(ctx context.Context) error
}
