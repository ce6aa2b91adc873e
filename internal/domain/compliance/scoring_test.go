package compliance

import "testing"

func TestScoreFramework(t *testing.T) {
	tests := []struct {
		name       string
		domains    []Domain
		wantScore  int
		wantStatus string
		wantFailed int
		wantErr    bool
	}{
		{
			name:       "single domain partial",
			domains:    []Domain{{Name: "D", Controls: 10, Passed: 7, Failed: 3, NA: 0}},
			wantScore:  70,
			wantStatus: StatusPartial,
			wantFailed: 3,
		},
		{
			name:       "compliant at exactly 90",
			domains:    []Domain{{Name: "D", Controls: 10, Passed: 9}},
			wantScore:  90,
			wantStatus: StatusCompliant,
			wantFailed: 1,
		},
		{
			name:       "partial at 89",
			domains:    []Domain{{Name: "D", Controls: 100, Passed: 89}},
			wantScore:  89,
			wantStatus: StatusPartial,
			wantFailed: 11,
		},
		{
			name:       "non-compliant at 69",
			domains:    []Domain{{Name: "D", Controls: 100, Passed: 69}},
			wantScore:  69,
			wantStatus: StatusNonCompliant,
			wantFailed: 31,
		},
		{
			name: "totals summed across domains ignoring stored total",
			domains: []Domain{
				{Name: "A", Controls: 6, Passed: 6},
				{Name: "B", Controls: 4, Passed: 2},
			},
			wantScore:  80,
			wantStatus: StatusPartial,
			wantFailed: 2,
		},
		{
			name:       "half rounds up",
			domains:    []Domain{{Name: "D", Controls: 8, Passed: 1}},
			wantScore:  13, // 12.5 rounds half up
			wantStatus: StatusNonCompliant,
			wantFailed: 7,
		},
		{
			name:    "zero controls is degenerate input",
			domains: []Domain{{Name: "D", Controls: 0, Passed: 0}},
			wantErr: true,
		},
		{
			name:    "no domains is degenerate input",
			domains: nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// TotalControls is deliberately wrong to prove the engine
			// recomputes from domains.
			f := &Framework{Key: "f", Name: "F", TotalControls: 9999, Domains: tt.domains}

			card, err := ScoreFramework(f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ScoreFramework() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if card.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", card.Score, tt.wantScore)
			}
			if card.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", card.Status, tt.wantStatus)
			}
			if card.Failed != tt.wantFailed {
				t.Errorf("Failed = %d, want %d", card.Failed, tt.wantFailed)
			}
			if card.Failed != card.TotalControls-card.Passed {
				t.Errorf("Failed = %d, want total-passed = %d", card.Failed, card.TotalControls-card.Passed)
			}
			if card.Score < 0 || card.Score > 100 {
				t.Errorf("Score = %d out of bounds", card.Score)
			}
		})
	}
}

func TestScoreFramework_Deterministic(t *testing.T) {
	f := &Framework{
		Key:  "f",
		Name: "F",
		Domains: []Domain{
			{Name: "A", Controls: 37, Passed: 32},
			{Name: "B", Controls: 34, Passed: 28},
		},
	}

	first, err := ScoreFramework(f)
	if err != nil {
		t.Fatalf("ScoreFramework() error = %v", err)
	}
	second, err := ScoreFramework(f)
	if err != nil {
		t.Fatalf("ScoreFramework() error = %v", err)
	}
	if *first != *second {
		t.Errorf("scorecards differ: %+v vs %+v", first, second)
	}
}

func TestScoreFrameworkEffective(t *testing.T) {
	f := &Framework{
		Key:     "f",
		Name:    "F",
		Domains: []Domain{{Name: "D", Controls: 10, Passed: 7}},
	}

	tests := []struct {
		name      string
		applied   int
		wantScore int
	}{
		{name: "no applied findings", applied: 0, wantScore: 70},
		{name: "two applied findings", applied: 2, wantScore: 90},
		{name: "capped at total controls", applied: 50, wantScore: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := ScoreFrameworkEffective(f, tt.applied)
			if err != nil {
				t.Fatalf("ScoreFrameworkEffective() error = %v", err)
			}
			if card.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", card.Score, tt.wantScore)
			}
		})
	}
}

func TestDomainPercent(t *testing.T) {
	tests := []struct {
		name    string
		domain  Domain
		want    int
		wantErr bool
	}{
		{name: "exact", domain: Domain{Controls: 10, Passed: 7}, want: 70},
		{name: "rounded up", domain: Domain{Controls: 37, Passed: 32}, want: 86}, // 86.49
		{name: "rounded half up", domain: Domain{Controls: 8, Passed: 7}, want: 88},
		{name: "zero controls", domain: Domain{Controls: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DomainPercent(tt.domain)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DomainPercent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DomainPercent() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, StatusCompliant},
		{90, StatusCompliant},
		{89, StatusPartial},
		{70, StatusPartial},
		{69, StatusNonCompliant},
		{0, StatusNonCompliant},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.score); got != tt.want {
			t.Errorf("StatusFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
