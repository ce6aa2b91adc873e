package compliance

import (
	"os"
	"path/filepath"
	"testing"
)

const validCatalogYAML = `
frameworks:
  - key: mini
    name: Mini Framework
    full_name: Minimal Framework
    total_controls: 10
    domains:
      - name: Domain A
        controls: 6
        passed: 5
        failed: 1
        na: 0
      - name: Domain B
        controls: 4
        passed: 2
        failed: 2
        na: 0
    findings:
      - id: mini-1
        control: C-1
        title: Something failed
        status: fail
        severity: high
        detail: broken
        recommendation_key: rec-fix-it
`

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{name: "valid catalog", yaml: validCatalogYAML},
		{name: "empty document", yaml: "frameworks: []", wantErr: true},
		{name: "not yaml", yaml: "{{{", wantErr: true},
		{
			name: "missing framework key",
			yaml: `
frameworks:
  - name: No Key
    domains:
      - name: D
        controls: 1
        passed: 1
`,
			wantErr: true,
		},
		{
			name: "bad finding severity",
			yaml: `
frameworks:
  - key: mini
    name: Mini
    domains:
      - name: D
        controls: 1
        passed: 1
    findings:
      - id: x
        control: C
        title: T
        status: fail
        severity: catastrophic
        recommendation_key: r
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCatalog([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCatalog() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			f, ok := c.Get("mini")
			if !ok {
				t.Fatal("framework mini not found after parse")
			}
			card, err := ScoreFramework(f)
			if err != nil {
				t.Fatalf("ScoreFramework() error = %v", err)
			}
			if card.Score != 70 {
				t.Errorf("Score = %d, want 70", card.Score)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(validCatalogYAML), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadCatalog() on missing file expected error")
	}
}
