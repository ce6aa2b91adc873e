package remediation

import "time"

// WorkflowState is a finding's position in the remediation lifecycle.
// Open is initial, Applied is terminal; there is no transition back.
type WorkflowState string

const (
	StateOpen     WorkflowState = "open"
	StateAccepted WorkflowState = "accepted"
	StateApplied  WorkflowState = "applied"
)

// IsTerminal reports whether the state admits no further transitions
func (s WorkflowState) IsTerminal() bool {
	return s == StateApplied
}

// FixTypeManual is recorded when the recommendation carries no auto-fix
// descriptor.
const FixTypeManual = "manual"

// Acceptance records who accepted a recommendation and when
type Acceptance struct {
	Actor string    `json:"actor"`
	At    time.Time `json:"at"`
}

// Application records who applied a fix, when, and how
type Application struct {
	Actor   string    `json:"actor"`
	At      time.Time `json:"at"`
	FixType string    `json:"fix_type"`
}

// RemediationState is the overlay tracked per finding. The original finding
// record is never rewritten; this state alone determines the workflow
// position. Invariant: Application != nil implies Acceptance != nil.
type RemediationState struct {
	FindingID   string       `json:"finding_id"`
	Acceptance  *Acceptance  `json:"acceptance,omitempty"`
	Application *Application `json:"application,omitempty"`
}

// State derives the workflow state from the overlay flags
func (s *RemediationState) State() WorkflowState {
	switch {
	case s == nil:
		return StateOpen
	case s.Application != nil:
		return StateApplied
	case s.Acceptance != nil:
		return StateAccepted
	default:
		return StateOpen
	}
}

// Clone returns a deep copy
func (s *RemediationState) Clone() *RemediationState {
	if s == nil {
		return nil
	}
	cp := &RemediationState{FindingID: s.FindingID}
	if s.Acceptance != nil {
		a := *s.Acceptance
		cp.Acceptance = &a
	}
	if s.Application != nil {
		a := *s.Application
		cp.Application = &a
	}
	return cp
}

// StateMap holds the full overlay for one framework, keyed by finding id
type StateMap map[string]*RemediationState

// Clone returns a deep copy of the map
func (m StateMap) Clone() StateMap {
	out := make(StateMap, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// StateOf returns the workflow state for a finding, Open when absent
func (m StateMap) StateOf(findingID string) WorkflowState {
	return m[findingID].State()
}

// Batch outcomes
const (
	BatchOutcomeApplied = "applied"
	BatchOutcomeFailed  = "failed"
)

// BatchItem is the outcome of one finding within a batch apply
type BatchItem struct {
	FindingID string `json:"finding_id"`
	Outcome   string `json:"outcome"`
	Error     string `json:"error,omitempty"`
}

// BatchResult reports a batch apply. Per-item outcomes are independent; a
// failed item never aborts the batch. NothingToDo distinguishes an empty
// candidate set from completed work.
type BatchResult struct {
	ID          string      `json:"id"`
	Attempted   int         `json:"attempted"`
	Succeeded   int         `json:"succeeded"`
	Failed      int         `json:"failed"`
	NothingToDo bool        `json:"nothing_to_do"`
	Detail      []BatchItem `json:"detail,omitempty"`
}
