package compliance

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/complyaudit/complyaudit/internal/pkg/validator"
)

// catalogFile is the YAML document shape for an external catalog
type catalogFile struct {
	Frameworks []*Framework `yaml:"frameworks" json:"frameworks" validate:"required,min=1"`
}

// LoadCatalog reads and validates a catalog from a YAML file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates a YAML catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if errs := validator.Validate(doc); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %s", errs[0].Message)
	}
	for _, f := range doc.Frameworks {
		if errs := validator.Validate(f); len(errs) > 0 {
			return nil, fmt.Errorf("invalid framework %q: %s", f.Key, errs[0].Message)
		}
	}

	return NewCatalog(doc.Frameworks...)
}
