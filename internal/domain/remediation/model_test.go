package remediation

import (
	"testing"
	"time"
)

func TestRemediationState_State(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		state *RemediationState
		want  WorkflowState
	}{
		{name: "nil state is open", state: nil, want: StateOpen},
		{name: "empty state is open", state: &RemediationState{FindingID: "f"}, want: StateOpen},
		{
			name:  "accepted",
			state: &RemediationState{FindingID: "f", Acceptance: &Acceptance{Actor: "a", At: now}},
			want:  StateAccepted,
		},
		{
			name: "applied",
			state: &RemediationState{
				FindingID:   "f",
				Acceptance:  &Acceptance{Actor: "a", At: now},
				Application: &Application{Actor: "a", At: now, FixType: FixTypeManual},
			},
			want: StateApplied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.State(); got != tt.want {
				t.Errorf("State() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStateMap_Clone(t *testing.T) {
	now := time.Now()
	m := StateMap{
		"f-1": &RemediationState{FindingID: "f-1", Acceptance: &Acceptance{Actor: "a", At: now}},
	}

	cp := m.Clone()
	cp["f-1"].Acceptance.Actor = "b"
	cp["f-2"] = &RemediationState{FindingID: "f-2"}

	if m["f-1"].Acceptance.Actor != "a" {
		t.Error("Clone() shares Acceptance with the original")
	}
	if _, ok := m["f-2"]; ok {
		t.Error("Clone() shares map storage with the original")
	}
}

func TestWorkflowState_IsTerminal(t *testing.T) {
	if StateOpen.IsTerminal() || StateAccepted.IsTerminal() {
		t.Error("open/accepted must not be terminal")
	}
	if !StateApplied.IsTerminal() {
		t.Error("applied must be terminal")
	}
}
