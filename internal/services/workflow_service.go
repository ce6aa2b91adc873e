package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
	"github.com/complyaudit/complyaudit/internal/domain/remediation"
	"github.com/complyaudit/complyaudit/internal/pkg/errors"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
	"github.com/complyaudit/complyaudit/internal/pkg/metrics"
)

// WorkflowService implements remediation.Service for one framework. It is
// constructed per session/framework with no hidden globals; all state lives
// on the struct and in the store. Writes follow write-then-confirm: the
// store is updated first and in-memory state only advances on success.
type WorkflowService struct {
	framework *compliance.Framework
	library   *recommendation.Library
	store     remediation.Store
	logger    *logger.Logger

	applyDelay time.Duration
	now        func() time.Time

	mu       sync.Mutex
	states   remediation.StateMap
	inflight map[string]struct{}

	findings map[string]*compliance.Finding
}

// WorkflowOption configures a WorkflowService
type WorkflowOption func(*WorkflowService)

// WithApplyDelay sets the simulated completion delay of an external fix
func WithApplyDelay(d time.Duration) WorkflowOption {
	return func(s *WorkflowService) { s.applyDelay = d }
}

// WithClock overrides the time source
func WithClock(now func() time.Time) WorkflowOption {
	return func(s *WorkflowService) { s.now = now }
}

// NewWorkflowService builds a workflow for one framework, verifying
// recommendation coverage for every failing finding and loading the
// persisted overlay.
func NewWorkflowService(
	ctx context.Context,
	framework *compliance.Framework,
	library *recommendation.Library,
	store remediation.Store,
	log *logger.Logger,
	opts ...WorkflowOption,
) (*WorkflowService, error) {
	s := &WorkflowService{
		framework: framework,
		library:   library,
		store:     store,
		logger:    log,
		now:       time.Now,
		inflight:  make(map[string]struct{}),
		findings:  make(map[string]*compliance.Finding, len(framework.Findings)),
	}
	for _, opt := range opts {
		opt(s)
	}

	var keys []string
	for i := range framework.Findings {
		f := &framework.Findings[i]
		s.findings[f.ID] = f
		if f.IsFailing() {
			keys = append(keys, f.RecommendationKey)
		}
	}
	if missing := library.VerifyKeys(keys); len(missing) > 0 {
		return nil, errors.DataIntegrity(
			fmt.Sprintf("framework %s references missing recommendation keys", framework.Key), nil,
		).WithDetails(missing)
	}

	states, err := store.Load(ctx, framework.Key)
	if err != nil {
		return nil, errors.PersistenceError("failed to load remediation state", err)
	}
	for id, st := range states {
		if st.Application != nil && st.Acceptance == nil {
			return nil, errors.DataIntegrity(
				fmt.Sprintf("finding %s is applied without acceptance in stored state", id), nil)
		}
	}
	s.states = states

	return s, nil
}

// Accept marks a failing finding's recommendation as accepted. Idempotent.
func (s *WorkflowService) Accept(ctx context.Context, findingID, actor string) (*remediation.RemediationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.findings[findingID]
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("finding %s", findingID))
	}
	if !f.IsFailing() {
		return nil, errors.BadRequest(fmt.Sprintf("finding %s passed and has nothing to remediate", findingID))
	}

	if st := s.states[findingID]; st != nil && st.Acceptance != nil {
		return st.Clone(), nil
	}

	next := s.states.Clone()
	next[findingID] = &remediation.RemediationState{
		FindingID:  findingID,
		Acceptance: &remediation.Acceptance{Actor: actor, At: s.now().UTC()},
	}
	if err := s.store.Save(ctx, s.framework.Key, next); err != nil {
		metrics.RecordWorkflowTransition("accept", "persistence_error")
		return nil, errors.PersistenceError("failed to persist acceptance", err)
	}
	s.states = next

	metrics.RecordWorkflowTransition("accept", "ok")
	s.logger.WithFields(map[string]interface{}{
		"framework":  s.framework.Key,
		"finding_id": findingID,
		"actor":      actor,
	}).Info("Recommendation accepted")

	return next[findingID].Clone(), nil
}

// Apply marks an accepted finding's fix as applied. Idempotent for an
// already applied finding; a concurrent apply for an in-flight finding is a
// no-op returning the current state.
func (s *WorkflowService) Apply(ctx context.Context, findingID, actor string) (*remediation.RemediationState, error) {
	s.mu.Lock()

	f, ok := s.findings[findingID]
	if !ok {
		s.mu.Unlock()
		return nil, errors.NotFound(fmt.Sprintf("finding %s", findingID))
	}
	if !f.IsFailing() {
		s.mu.Unlock()
		return nil, errors.BadRequest(fmt.Sprintf("finding %s passed and has nothing to remediate", findingID))
	}

	st := s.states[findingID]
	if st != nil && st.Application != nil {
		cp := st.Clone()
		s.mu.Unlock()
		return cp, nil
	}
	if st == nil || st.Acceptance == nil {
		s.mu.Unlock()
		metrics.RecordWorkflowTransition("apply", "precondition_failed")
		return nil, errors.PreconditionFailed("acceptance required before fix can be applied")
	}
	if _, busy := s.inflight[findingID]; busy {
		cp := st.Clone()
		s.mu.Unlock()
		return cp, nil
	}
	s.inflight[findingID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, findingID)
		s.mu.Unlock()
	}()

	// Simulated external fix. Cancellation is best effort: nothing has been
	// mutated yet, so a cancelled apply leaves the finding Accepted.
	if s.applyDelay > 0 {
		select {
		case <-time.After(s.applyDelay):
		case <-ctx.Done():
			metrics.RecordWorkflowTransition("apply", "cancelled")
			return nil, ctx.Err()
		}
	}

	fixType := remediation.FixTypeManual
	rec, err := s.library.Get(f.RecommendationKey)
	if err != nil {
		return nil, errors.DataIntegrity(
			fmt.Sprintf("finding %s references unknown recommendation %q", findingID, f.RecommendationKey), err)
	}
	if rec.AutoFix != nil && rec.AutoFix.Type != "" {
		fixType = rec.AutoFix.Type
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st = s.states[findingID]
	if st == nil || st.Acceptance == nil {
		// The overlay was reset while the fix was running.
		metrics.RecordWorkflowTransition("apply", "precondition_failed")
		return nil, errors.PreconditionFailed("acceptance required before fix can be applied")
	}
	if st.Application != nil {
		return st.Clone(), nil
	}

	next := s.states.Clone()
	ns := st.Clone()
	ns.Application = &remediation.Application{Actor: actor, At: s.now().UTC(), FixType: fixType}
	next[findingID] = ns
	if err := s.store.Save(ctx, s.framework.Key, next); err != nil {
		// The finding stays visibly Accepted, never falsely Applied.
		metrics.RecordWorkflowTransition("apply", "persistence_error")
		return nil, errors.PersistenceError("failed to persist application", err)
	}
	s.states = next

	metrics.RecordWorkflowTransition("apply", "ok")
	s.logger.WithFields(map[string]interface{}{
		"framework":  s.framework.Key,
		"finding_id": findingID,
		"actor":      actor,
		"fix_type":   fixType,
	}).Info("Fix applied")

	return ns.Clone(), nil
}

// ApplyAll applies each candidate independently and reports per-item
// outcomes. A failing item never aborts the batch.
func (s *WorkflowService) ApplyAll(ctx context.Context, actor string, findingIDs ...string) (*remediation.BatchResult, error) {
	candidates := findingIDs
	if len(candidates) == 0 {
		s.mu.Lock()
		for _, f := range s.framework.Findings {
			if st := s.states[f.ID]; st != nil && st.Acceptance != nil && st.Application == nil {
				candidates = append(candidates, f.ID)
			}
		}
		s.mu.Unlock()
	}

	result := &remediation.BatchResult{ID: uuid.New().String()}
	if len(candidates) == 0 {
		result.NothingToDo = true
		s.logger.WithFields(map[string]interface{}{
			"framework": s.framework.Key,
			"batch_id":  result.ID,
		}).Info("Batch apply found no pending findings")
		return result, nil
	}

	for _, id := range candidates {
		result.Attempted++
		if _, err := s.Apply(ctx, id, actor); err != nil {
			result.Failed++
			result.Detail = append(result.Detail, remediation.BatchItem{
				FindingID: id,
				Outcome:   remediation.BatchOutcomeFailed,
				Error:     err.Error(),
			})
			if ctx.Err() != nil {
				break
			}
			continue
		}
		result.Succeeded++
		result.Detail = append(result.Detail, remediation.BatchItem{
			FindingID: id,
			Outcome:   remediation.BatchOutcomeApplied,
		})
	}

	metrics.RecordBatchApplySize(result.Attempted)
	s.logger.WithFields(map[string]interface{}{
		"framework": s.framework.Key,
		"batch_id":  result.ID,
		"attempted": result.Attempted,
		"succeeded": result.Succeeded,
		"failed":    result.Failed,
	}).Info("Batch apply finished")

	return result, nil
}

// Status returns the workflow state of one finding
func (s *WorkflowService) Status(ctx context.Context, findingID string) (remediation.WorkflowState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findings[findingID]; !ok {
		return "", errors.NotFound(fmt.Sprintf("finding %s", findingID))
	}
	return s.states.StateOf(findingID), nil
}

// States returns a copy of the framework's full overlay
func (s *WorkflowService) States(ctx context.Context) (remediation.StateMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states.Clone(), nil
}

// Reset wipes the framework's overlay in the store and in memory
func (s *WorkflowService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx, s.framework.Key); err != nil {
		return errors.PersistenceError("failed to clear remediation state", err)
	}
	s.states = make(remediation.StateMap)

	s.logger.WithFields(map[string]interface{}{
		"framework": s.framework.Key,
	}).Warn("Remediation state reset")
	return nil
}
