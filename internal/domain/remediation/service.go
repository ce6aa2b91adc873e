package remediation

import "context"

// Service drives the remediation workflow for one framework. Accept and
// Apply are idempotent and safe to retry; Apply requires a prior Accept.
type Service interface {
	// Accept marks a failing finding's recommendation as accepted.
	// Calling it on an already accepted or applied finding is a no-op.
	Accept(ctx context.Context, findingID, actor string) (*RemediationState, error)

	// Apply marks an accepted finding's fix as applied, recording the fix
	// type from the recommendation's auto-fix descriptor. Applying an Open
	// finding fails with a precondition error and mutates nothing.
	Apply(ctx context.Context, findingID, actor string) (*RemediationState, error)

	// ApplyAll applies each candidate independently. With no explicit ids
	// the candidates are all accepted, not yet applied findings.
	ApplyAll(ctx context.Context, actor string, findingIDs ...string) (*BatchResult, error)

	// Status returns the workflow state of one finding.
	Status(ctx context.Context, findingID string) (WorkflowState, error)

	// States returns a copy of the framework's full overlay.
	States(ctx context.Context) (StateMap, error)

	// Reset wipes the framework's overlay. Administrative action.
	Reset(ctx context.Context) error
}
