package remediation

import "context"

// Store is a durable, scoped key-value store for remediation overlay state.
// The scope key is the framework key; the value is the framework's full
// StateMap. The store holds no business logic.
type Store interface {
	// Load returns the state map for a framework. A missing namespace is an
	// empty map, never an error.
	Load(ctx context.Context, frameworkKey string) (StateMap, error)

	// Save overwrites the framework's full state map. A save either fully
	// succeeds or leaves the prior state intact.
	Save(ctx context.Context, frameworkKey string, states StateMap) error

	// Clear wipes the framework's namespace. Administrative reset only.
	Clear(ctx context.Context, frameworkKey string) error
}
