package testutil

import (
	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
)

// TestFramework returns a small framework with two failing and one passing
// finding, suitable for workflow tests.
func TestFramework() *compliance.Framework {
	return &compliance.Framework{
		Key:           "test",
		Name:          "Test Framework",
		FullName:      "Framework for Tests",
		TotalControls: 10,
		Domains: []compliance.Domain{
			{Name: "Domain A", Controls: 10, Passed: 7, Failed: 3, NA: 0},
		},
		Findings: []compliance.Finding{
			{ID: "f-1", Control: "C-1", Title: "First failing control", Status: compliance.FindingStatusFail, Severity: compliance.SeverityHigh, Detail: "bad", RecommendationKey: "r-auto"},
			{ID: "f-2", Control: "C-2", Title: "Second failing control", Status: compliance.FindingStatusFail, Severity: compliance.SeverityMedium, Detail: "also bad", RecommendationKey: "r-manual"},
			{ID: "f-3", Control: "C-3", Title: "Passing control", Status: compliance.FindingStatusPass, Severity: compliance.SeverityInfo, Detail: "fine", RecommendationKey: "r-manual"},
		},
	}
}

// TestLibrary returns a library covering TestFramework's keys: one
// recommendation with an auto-fix descriptor and one without.
func TestLibrary() *recommendation.Library {
	lib, err := recommendation.NewLibrary(
		&recommendation.Recommendation{
			Key:      "r-auto",
			Title:    "Automated fix",
			Steps:    []string{"run the fixer"},
			AutoFix:  &recommendation.AutoFix{Type: "patch"},
			Priority: recommendation.PriorityHigh,
			Effort:   recommendation.EffortLow,
		},
		&recommendation.Recommendation{
			Key:      "r-manual",
			Title:    "Manual fix",
			Steps:    []string{"do it by hand"},
			Priority: recommendation.PriorityMedium,
			Effort:   recommendation.EffortMedium,
		},
	)
	if err != nil {
		panic(err)
	}
	return lib
}
