package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/complyaudit/complyaudit/internal/domain/compliance"
	"github.com/complyaudit/complyaudit/internal/domain/remediation"
)

// MockStore is an in-memory implementation of remediation.Store with error
// injection for testing failure paths.
type MockStore struct {
	mu   sync.Mutex
	Data map[string]remediation.StateMap

	LoadError  error
	SaveError  error
	ClearError error

	// FailSaveOn makes the Nth save call (1-based) return SaveError once.
	// When zero, SaveError (if set) fails every save.
	FailSaveOn int

	SaveCalls  int
	LoadCalls  int
	ClearCalls int
}

// NewMockStore creates an empty mock store
func NewMockStore() *MockStore {
	return &MockStore{
		Data: make(map[string]remediation.StateMap),
	}
}

func (m *MockStore) Load(ctx context.Context, frameworkKey string) (remediation.StateMap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LoadCalls++
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	states, ok := m.Data[frameworkKey]
	if !ok {
		return make(remediation.StateMap), nil
	}
	return states.Clone(), nil
}

func (m *MockStore) Save(ctx context.Context, frameworkKey string, states remediation.StateMap) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SaveCalls++
	if m.SaveError != nil {
		if m.FailSaveOn == 0 || m.SaveCalls == m.FailSaveOn {
			return m.SaveError
		}
	}
	m.Data[frameworkKey] = states.Clone()
	return nil
}

func (m *MockStore) Clear(ctx context.Context, frameworkKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ClearCalls++
	if m.ClearError != nil {
		return m.ClearError
	}
	delete(m.Data, frameworkKey)
	return nil
}

// MockTrendStore is an in-memory snapshot store
type MockTrendStore struct {
	mu        sync.Mutex
	Points    []compliance.TrendPoint
	SaveError error
	ListError error
}

// NewMockTrendStore creates an empty mock trend store
func NewMockTrendStore() *MockTrendStore {
	return &MockTrendStore{}
}

func (m *MockTrendStore) SaveSnapshot(ctx context.Context, at time.Time, scores map[string]int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return m.SaveError
	}
	for key, score := range scores {
		m.Points = append(m.Points, compliance.TrendPoint{TakenAt: at, FrameworkKey: key, Score: score})
	}
	return nil
}

func (m *MockTrendStore) ListSnapshots(ctx context.Context, frameworkKey string, limit int) ([]compliance.TrendPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListError != nil {
		return nil, m.ListError
	}
	var out []compliance.TrendPoint
	for i := len(m.Points) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		if m.Points[i].FrameworkKey == frameworkKey {
			out = append(out, m.Points[i])
		}
	}
	return out, nil
}
