package compliance

import (
	"errors"
	"math"
)

// ErrNoControls is returned when a framework or domain has zero controls to
// score. Callers must surface it explicitly; a score is never NaN.
var ErrNoControls = errors.New("no controls to score")

// Compliance statuses
const (
	StatusCompliant    = "Compliant"
	StatusPartial      = "Partial"
	StatusNonCompliant = "Non-Compliant"
)

// Scorecard is the computed compliance result for one framework. Totals are
// recomputed from the domains, not taken from the framework's stored
// total_controls field.
type Scorecard struct {
	TotalControls int    `json:"total_controls"`
	Passed        int    `json:"passed"`
	Failed        int    `json:"failed"`
	Score         int    `json:"score"`
	Status        string `json:"status"`
}

// ScoreFramework computes the scorecard for a framework. Pure: identical
// input yields an identical result.
func ScoreFramework(f *Framework) (*Scorecard, error) {
	var totalControls, totalPassed int
	for _, d := range f.Domains {
		totalControls += d.Controls
		totalPassed += d.Passed
	}
	return scoreCounts(totalPassed, totalControls)
}

// ScoreFrameworkEffective computes a scorecard that counts appliedFindings
// remediated findings as additional passed controls, capped at the control
// total. Used only by the explicit re-scoring policy; the scan-derived
// scorecard is never replaced.
func ScoreFrameworkEffective(f *Framework, appliedFindings int) (*Scorecard, error) {
	var totalControls, totalPassed int
	for _, d := range f.Domains {
		totalControls += d.Controls
		totalPassed += d.Passed
	}
	totalPassed += appliedFindings
	if totalPassed > totalControls {
		totalPassed = totalControls
	}
	return scoreCounts(totalPassed, totalControls)
}

func scoreCounts(passed, total int) (*Scorecard, error) {
	if total == 0 {
		return nil, ErrNoControls
	}
	score := roundPercent(passed, total)
	return &Scorecard{
		TotalControls: total,
		Passed:        passed,
		Failed:        total - passed,
		Score:         score,
		Status:        StatusFor(score),
	}, nil
}

// StatusFor classifies an integer score. Band lower bounds are inclusive.
func StatusFor(score int) string {
	switch {
	case score >= 90:
		return StatusCompliant
	case score >= 70:
		return StatusPartial
	default:
		return StatusNonCompliant
	}
}

// DomainPercent returns a domain's display percentage, rounded half up,
// with the same zero-division handling as the framework score.
func DomainPercent(d Domain) (int, error) {
	if d.Controls == 0 {
		return 0, ErrNoControls
	}
	return roundPercent(d.Passed, d.Controls), nil
}

// roundPercent rounds half away from zero; inputs are non-negative so this
// is round-half-up.
func roundPercent(passed, total int) int {
	return int(math.Round(float64(passed) / float64(total) * 100))
}
