package compliance

import "time"

// Framework represents a compliance standard with its control domains and
// the findings produced by the most recent assessment. Frameworks are
// supplied fully formed by the catalog and are immutable for the life of a
// session.
type Framework struct {
	Key           string    `json:"key" yaml:"key" validate:"required"`
	Name          string    `json:"name" yaml:"name" validate:"required"`
	FullName      string    `json:"full_name" yaml:"full_name"`
	Description   string    `json:"description,omitempty" yaml:"description,omitempty"`
	Icon          string    `json:"icon,omitempty" yaml:"icon,omitempty"`
	Color         string    `json:"color,omitempty" yaml:"color,omitempty"`
	TotalControls int       `json:"total_controls" yaml:"total_controls" validate:"gte=0"`
	Domains       []Domain  `json:"domains" yaml:"domains" validate:"required,min=1,dive"`
	Findings      []Finding `json:"findings,omitempty" yaml:"findings,omitempty" validate:"dive"`
}

// Domain is a grouping of controls within a framework, carrying the
// pass/fail/not-applicable counts of its controls. The counts may be
// inconsistent in source data; only passed and controls are authoritative
// for scoring.
type Domain struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Controls int    `json:"controls" yaml:"controls" validate:"gte=0"`
	Passed   int    `json:"passed" yaml:"passed" validate:"gte=0"`
	Failed   int    `json:"failed" yaml:"failed" validate:"gte=0"`
	NA       int    `json:"na" yaml:"na" validate:"gte=0"`
}

// Finding statuses
const (
	FindingStatusPass = "pass"
	FindingStatusFail = "fail"
)

// Finding severities
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
	SeverityInfo     = "info"
)

// Finding is a single assessment result tied to one control. The record is
// read-only; remediation progress is tracked as overlay state, never by
// rewriting Status.
type Finding struct {
	ID                string `json:"id" yaml:"id" validate:"required"`
	Control           string `json:"control" yaml:"control" validate:"required"`
	Title             string `json:"title" yaml:"title" validate:"required"`
	Status            string `json:"status" yaml:"status" validate:"oneof=pass fail"`
	Severity          string `json:"severity" yaml:"severity" validate:"oneof=critical high medium low info"`
	Detail            string `json:"detail" yaml:"detail"`
	RecommendationKey string `json:"recommendation_key" yaml:"recommendation_key" validate:"required"`
}

// IsFailing reports whether the finding is a fail result
func (f Finding) IsFailing() bool {
	return f.Status == FindingStatusFail
}

// Finding returns the finding with the given id, if present
func (f *Framework) Finding(id string) (*Finding, bool) {
	for i := range f.Findings {
		if f.Findings[i].ID == id {
			return &f.Findings[i], true
		}
	}
	return nil, false
}

// FailingFindings returns the framework's fail results in catalog order
func (f *Framework) FailingFindings() []Finding {
	var out []Finding
	for _, fd := range f.Findings {
		if fd.IsFailing() {
			out = append(out, fd)
		}
	}
	return out
}

// TrendPoint is one recorded posture snapshot for a framework
type TrendPoint struct {
	TakenAt      time.Time `json:"taken_at"`
	FrameworkKey string    `json:"framework_key"`
	Score        int       `json:"score"`
}
