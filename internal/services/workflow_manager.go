package services

import (
	"context"
	"sync"
	"time"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/recommendation"
	"github.com/complyaudit/complyaudit/internal/domain/remediation"
	"github.com/complyaudit/complyaudit/internal/pkg/errors"
	"github.com/complyaudit/complyaudit/internal/pkg/logger"
)

// WorkflowManager hands out one WorkflowService per framework, constructed
// lazily and cached for the life of the process.
type WorkflowManager struct {
	catalog    *compliance.Catalog
	library    *recommendation.Library
	store      remediation.Store
	logger     *logger.Logger
	applyDelay time.Duration

	mu        sync.Mutex
	workflows map[string]*WorkflowService
}

// NewWorkflowManager creates a workflow manager
func NewWorkflowManager(
	catalog *compliance.Catalog,
	library *recommendation.Library,
	store remediation.Store,
	applyDelay time.Duration,
	log *logger.Logger,
) *WorkflowManager {
	return &WorkflowManager{
		catalog:    catalog,
		library:    library,
		store:      store,
		logger:     log,
		applyDelay: applyDelay,
		workflows:  make(map[string]*WorkflowService),
	}
}

// For returns the workflow service for a framework key
func (m *WorkflowManager) For(ctx context.Context, frameworkKey string) (remediation.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if wf, ok := m.workflows[frameworkKey]; ok {
		return wf, nil
	}

	framework, ok := m.catalog.Get(frameworkKey)
	if !ok {
		return nil, errors.NotFound("framework " + frameworkKey)
	}

	wf, err := NewWorkflowService(ctx, framework, m.library, m.store, m.logger,
		WithApplyDelay(m.applyDelay))
	if err != nil {
		return nil, err
	}
	m.workflows[frameworkKey] = wf
	return wf, nil
}
