package recommendation

import (
	"fmt"

	"github.com/complyaudit/complyaudit/internal/pkg/errors"
)

// Library is a read-only keyed lookup of recommendations, loaded once per
// session.
type Library struct {
	recs  map[string]*Recommendation
	order []string
}

// NewLibrary builds a library from the given recommendations, preserving
// order. Duplicate keys are rejected.
func NewLibrary(recs ...*Recommendation) (*Library, error) {
	l := &Library{
		recs: make(map[string]*Recommendation, len(recs)),
	}
	for _, r := range recs {
		if r.Key == "" {
			return nil, fmt.Errorf("recommendation %q has no key", r.Title)
		}
		if _, exists := l.recs[r.Key]; exists {
			return nil, fmt.Errorf("duplicate recommendation key %q", r.Key)
		}
		l.recs[r.Key] = r
		l.order = append(l.order, r.Key)
	}
	return l, nil
}

// Get returns the recommendation for a key, or a NotFound error
func (l *Library) Get(key string) (*Recommendation, error) {
	r, ok := l.recs[key]
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("recommendation %q", key))
	}
	return r, nil
}

// Has reports whether the library contains a key
func (l *Library) Has(key string) bool {
	_, ok := l.recs[key]
	return ok
}

// List returns all recommendations in insertion order
func (l *Library) List() []*Recommendation {
	out := make([]*Recommendation, 0, len(l.order))
	for _, k := range l.order {
		out = append(out, l.recs[k])
	}
	return out
}

// VerifyKeys checks that every key is present and returns the missing ones.
// A served finding referencing a missing key is a data-integrity condition
// the caller must surface.
func (l *Library) VerifyKeys(keys []string) []string {
	var missing []string
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if !l.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}
