package compliance

import "fmt"

// Catalog is an ordered, keyed collection of frameworks
type Catalog struct {
	frameworks []*Framework
	index      map[string]*Framework
}

// NewCatalog builds a catalog from the given frameworks, preserving order.
// Duplicate keys are rejected.
func NewCatalog(frameworks ...*Framework) (*Catalog, error) {
	c := &Catalog{
		index: make(map[string]*Framework, len(frameworks)),
	}
	for _, f := range frameworks {
		if f.Key == "" {
			return nil, fmt.Errorf("framework %q has no key", f.Name)
		}
		if _, exists := c.index[f.Key]; exists {
			return nil, fmt.Errorf("duplicate framework key %q", f.Key)
		}
		c.frameworks = append(c.frameworks, f)
		c.index[f.Key] = f
	}
	return c, nil
}

// Get returns the framework with the given key
func (c *Catalog) Get(key string) (*Framework, bool) {
	f, ok := c.index[key]
	return f, ok
}

// List returns all frameworks in catalog order
func (c *Catalog) List() []*Framework {
	return c.frameworks
}

// Len returns the number of frameworks in the catalog
func (c *Catalog) Len() int {
	return len(c.frameworks)
}
