package recommendation

// Priority levels
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
)

// Effort levels
const (
	EffortLow    = "low"
	EffortMedium = "medium"
	EffortHigh   = "high"
)

// Recommendation is keyed remediation guidance, reusable across findings
type Recommendation struct {
	Key           string   `json:"key" yaml:"key"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Steps         []string `json:"steps" yaml:"steps"`
	AutoFix       *AutoFix `json:"auto_fix,omitempty" yaml:"auto_fix,omitempty"`
	Priority      string   `json:"priority" yaml:"priority"`
	Effort        string   `json:"effort" yaml:"effort"`
	EstimatedTime string   `json:"estimated_time" yaml:"estimated_time"`
	RiskIfIgnored string   `json:"risk_if_ignored" yaml:"risk_if_ignored"`
}

// AutoFix describes structured guidance for an automated fix. Type feeds the
// workflow's recorded fix_type; Params carry free-form technical detail.
type AutoFix struct {
	Type   string            `json:"type" yaml:"type"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}
