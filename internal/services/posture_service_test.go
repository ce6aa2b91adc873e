package services

import (
	"context"
	"testing"
	"time"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
	"github.com/complyaudit/complyaudit/internal/domain/remediation"
	"github.com/complyaudit/complyaudit/internal/pkg/errors"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/testutil"
)

func testCatalog(t *testing.T) *compliance.Catalog {
	t.Helper()
	c, err := compliance.NewCatalog(testutil.TestFramework())
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

func newTestPosture(t *testing.T, store *testutil.MockStore, opts ...PostureOption) *PostureService {
	t.Helper()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewPostureService(testCatalog(t), testutil.TestLibrary(), store, log, opts...)
}

func TestPostureService_GetFramework(t *testing.T) {
	svc := newTestPosture(t, testutil.NewMockStore())
	ctx := context.Background()

	summary, err := svc.GetFramework(ctx, "test")
	if err != nil {
		t.Fatalf("GetFramework() error = %v", err)
	}
	if summary.Scorecard.Score != 70 || summary.Scorecard.Status != compliance.StatusPartial {
		t.Errorf("scorecard = %+v, want score 70 Partial", summary.Scorecard)
	}
	if summary.EffectiveScore != nil {
		t.Error("EffectiveScore set without the re-scoring policy enabled")
	}

	if _, err := svc.GetFramework(ctx, "nope"); !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("GetFramework() on unknown key error = %v, want NOT_FOUND", err)
	}
}

func TestPostureService_GetFramework_ZeroControls(t *testing.T) {
	catalog, err := compliance.NewCatalog(&compliance.Framework{
		Key:  "empty",
		Name: "Empty",
	})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewPostureService(catalog, testutil.TestLibrary(), testutil.NewMockStore(), log)

	_, err = svc.GetFramework(context.Background(), "empty")
	if !errors.IsCode(err, errors.ErrCodeDegenerateInput) {
		t.Fatalf("GetFramework() error = %v, want DEGENERATE_INPUT", err)
	}
}

func TestPostureService_EffectiveScore(t *testing.T) {
	store := testutil.NewMockStore()
	now := time.Now().UTC()
	store.Data["test"] = remediation.StateMap{
		"f-1": &remediation.RemediationState{
			FindingID:   "f-1",
			Acceptance:  &remediation.Acceptance{Actor: "a", At: now},
			Application: &remediation.Application{Actor: "a", At: now, FixType: "patch"},
		},
		"f-2": &remediation.RemediationState{
			FindingID:  "f-2",
			Acceptance: &remediation.Acceptance{Actor: "a", At: now},
		},
	}

	svc := newTestPosture(t, store, WithAppliedCountedAsPassed())
	summary, err := svc.GetFramework(context.Background(), "test")
	if err != nil {
		t.Fatalf("GetFramework() error = %v", err)
	}

	// Scan score stays 7/10; one applied finding lifts the effective score
	// to 8/10. Accepted-only findings do not count.
	if summary.Scorecard.Score != 70 {
		t.Errorf("scan score = %d, want 70 untouched by the overlay", summary.Scorecard.Score)
	}
	if summary.EffectiveScore == nil {
		t.Fatal("EffectiveScore missing with the re-scoring policy enabled")
	}
	if *summary.EffectiveScore != 80 {
		t.Errorf("EffectiveScore = %d, want 80", *summary.EffectiveScore)
	}
	if summary.EffectiveStatus != compliance.StatusPartial {
		t.Errorf("EffectiveStatus = %s, want %s", summary.EffectiveStatus, compliance.StatusPartial)
	}
}

func TestPostureService_Findings(t *testing.T) {
	store := testutil.NewMockStore()
	now := time.Now().UTC()
	store.Data["test"] = remediation.StateMap{
		"f-1": &remediation.RemediationState{
			FindingID:   "f-1",
			Acceptance:  &remediation.Acceptance{Actor: "a", At: now},
			Application: &remediation.Application{Actor: "a", At: now, FixType: "patch"},
		},
	}

	svc := newTestPosture(t, store)
	views, err := svc.Findings(context.Background(), "test")
	if err != nil {
		t.Fatalf("Findings() error = %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("Findings() returned %d views, want 3", len(views))
	}

	byID := make(map[string]*compliance.FindingView)
	for _, v := range views {
		byID[v.ID] = v
	}

	// Applied finding renders Fixed while the scan status stays fail.
	v := byID["f-1"]
	if v.DisplayStatus != "Fixed" || v.Status != compliance.FindingStatusFail {
		t.Errorf("f-1 display = %s status = %s, want Fixed over fail", v.DisplayStatus, v.Status)
	}
	if v.WorkflowState != remediation.StateApplied {
		t.Errorf("f-1 workflow state = %s, want applied", v.WorkflowState)
	}
	if v.Recommendation == nil || v.Recommendation.Key != "r-auto" {
		t.Errorf("f-1 recommendation = %+v, want r-auto", v.Recommendation)
	}

	if byID["f-2"].DisplayStatus != "Fail" || byID["f-2"].WorkflowState != remediation.StateOpen {
		t.Errorf("f-2 = %s/%s, want Fail/open", byID["f-2"].DisplayStatus, byID["f-2"].WorkflowState)
	}
	if byID["f-3"].DisplayStatus != "Pass" || byID["f-3"].Recommendation != nil {
		t.Errorf("f-3 = %s with rec %+v, want Pass with no recommendation", byID["f-3"].DisplayStatus, byID["f-3"].Recommendation)
	}
}

func TestPostureService_Findings_MissingRecommendation(t *testing.T) {
	framework := testutil.TestFramework()
	framework.Findings[0].RecommendationKey = "r-missing"
	catalog, err := compliance.NewCatalog(framework)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewPostureService(catalog, testutil.TestLibrary(), testutil.NewMockStore(), log)

	_, err = svc.Findings(context.Background(), "test")
	if !errors.IsCode(err, errors.ErrCodeDataIntegrity) {
		t.Fatalf("Findings() error = %v, want DATA_INTEGRITY", err)
	}
}

func TestPostureService_Domains(t *testing.T) {
	svc := newTestPosture(t, testutil.NewMockStore())

	views, err := svc.Domains(context.Background(), "test")
	if err != nil {
		t.Fatalf("Domains() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("Domains() returned %d views, want 1", len(views))
	}
	if views[0].DisplayPercent != 70 {
		t.Errorf("DisplayPercent = %d, want 70", views[0].DisplayPercent)
	}
}

func TestPostureService_Overview(t *testing.T) {
	store := testutil.NewMockStore()
	now := time.Now().UTC()
	store.Data["test"] = remediation.StateMap{
		"f-1": &remediation.RemediationState{
			FindingID:   "f-1",
			Acceptance:  &remediation.Acceptance{Actor: "a", At: now},
			Application: &remediation.Application{Actor: "a", At: now, FixType: "patch"},
		},
	}

	svc := newTestPosture(t, store)
	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}

	if ov.Frameworks != 1 || ov.Compliant != 0 {
		t.Errorf("overview = %+v, want 1 framework, 0 compliant", ov)
	}
	if ov.AverageScore != 70 || ov.OverallPercent != 70 {
		t.Errorf("averages = %d/%d, want 70/70", ov.AverageScore, ov.OverallPercent)
	}
	if ov.TotalControls != 10 || ov.TotalPassed != 7 {
		t.Errorf("controls = %d/%d, want 7 of 10", ov.TotalPassed, ov.TotalControls)
	}

	// f-1 (high) is applied, so only f-2 (medium) remains open.
	if ov.OpenBySeverity[compliance.SeverityHigh] != 0 {
		t.Errorf("open high = %d, want 0 after apply", ov.OpenBySeverity[compliance.SeverityHigh])
	}
	if ov.OpenBySeverity[compliance.SeverityMedium] != 1 {
		t.Errorf("open medium = %d, want 1", ov.OpenBySeverity[compliance.SeverityMedium])
	}
}

func TestPostureService_Trend(t *testing.T) {
	t.Run("disabled without a trend store", func(t *testing.T) {
		svc := newTestPosture(t, testutil.NewMockStore())
		_, err := svc.Trend(context.Background(), "test", 10)
		if !errors.IsCode(err, errors.ErrCodeServiceUnavailable) {
			t.Fatalf("Trend() error = %v, want SERVICE_UNAVAILABLE", err)
		}
	})

	t.Run("snapshot then list", func(t *testing.T) {
		trends := testutil.NewMockTrendStore()
		svc := newTestPosture(t, testutil.NewMockStore(), WithTrendStore(trends))
		ctx := context.Background()

		if err := svc.Snapshot(ctx); err != nil {
			t.Fatalf("Snapshot() error = %v", err)
		}
		points, err := svc.Trend(ctx, "test", 10)
		if err != nil {
			t.Fatalf("Trend() error = %v", err)
		}
		if len(points) != 1 {
			t.Fatalf("Trend() returned %d points, want 1", len(points))
		}
		if points[0].Score != 70 {
			t.Errorf("snapshot score = %d, want 70", points[0].Score)
		}

		if _, err := svc.Trend(ctx, "nope", 10); !errors.IsCode(err, errors.ErrCodeNotFound) {
			t.Errorf("Trend() on unknown key error = %v, want NOT_FOUND", err)
		}
	})
}

func TestDefaultCatalogCoveredByDefaultLibrary(t *testing.T) {
	catalog := compliance.DefaultCatalog()
	lib := recommendation.DefaultLibrary()

	for _, f := range catalog.List() {
		for _, fd := range f.FailingFindings() {
			if !lib.Has(fd.RecommendationKey) {
				t.Errorf("finding %s references recommendation %q missing from the default library",
					fd.ID, fd.RecommendationKey)
			}
		}
	}
}
