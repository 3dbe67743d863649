package store

import (
	"context"
	"errors"
	"sync"

	"ticklist/internal/domain"
)

// ErrMockNotImplemented is returned when a MockClient method lacks an override.
var ErrMockNotImplemented = errors.New("store.MockClient: method not implemented")

// MockClient is a test double for the persistence Client interface. Read
// methods default to ErrMockNotImplemented; write methods default to a
// successful no-op so tests only stub what they assert on.
type MockClient struct {
	ListsFn               func(context.Context) ([]domain.List, error)
	GetListFn             func(context.Context, string) (domain.List, error)
	CreateListFn          func(context.Context, domain.List) error
	UpdateListFn          func(context.Context, domain.List) error
	DeleteListFn          func(context.Context, string) error
	CategoriesFn          func(context.Context) ([]domain.Category, error)
	AddCategoryFn         func(context.Context, domain.Category) error
	UpdateCategoryColorFn func(context.Context, string, string) error

	mu                           sync.Mutex
	ListsCallCount               int
	GetListCallCount             int
	CreateListCallCount          int
	UpdateListCallCount          int
	DeleteListCallCount          int
	CategoriesCallCount          int
	AddCategoryCallCount         int
	UpdateCategoryColorCallCount int

	GetListCallArgs             []string
	CreateListCallArgs          []domain.List
	UpdateListCallArgs          []domain.List
	DeleteListCallArgs          []string
	AddCategoryCallArgs         []domain.Category
	UpdateCategoryColorCallArgs [][]string // [name, color]
}

// NewMockClient returns a MockClient with zeroed handlers.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Lists invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) Lists(ctx context.Context) ([]domain.List, error) {
	m.mu.Lock()
	m.ListsCallCount++
	m.mu.Unlock()

	if m.ListsFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.ListsFn(ctx)
}

// GetList invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) GetList(ctx context.Context, id string) (domain.List, error) {
	m.mu.Lock()
	m.GetListCallCount++
	m.GetListCallArgs = append(m.GetListCallArgs, id)
	m.mu.Unlock()

	if m.GetListFn == nil {
		return domain.List{}, ErrMockNotImplemented
	}
	return m.GetListFn(ctx, id)
}

// CreateList invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) CreateList(ctx context.Context, list domain.List) error {
	m.mu.Lock()
	m.CreateListCallCount++
	m.CreateListCallArgs = append(m.CreateListCallArgs, list.Clone())
	m.mu.Unlock()

	if m.CreateListFn == nil {
		return nil
	}
	return m.CreateListFn(ctx, list)
}

// UpdateList invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) UpdateList(ctx context.Context, list domain.List) error {
	m.mu.Lock()
	m.UpdateListCallCount++
	m.UpdateListCallArgs = append(m.UpdateListCallArgs, list.Clone())
	m.mu.Unlock()

	if m.UpdateListFn == nil {
		return nil
	}
	return m.UpdateListFn(ctx, list)
}

// DeleteList invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) DeleteList(ctx context.Context, id string) error {
	m.mu.Lock()
	m.DeleteListCallCount++
	m.DeleteListCallArgs = append(m.DeleteListCallArgs, id)
	m.mu.Unlock()

	if m.DeleteListFn == nil {
		return nil
	}
	return m.DeleteListFn(ctx, id)
}

// Categories invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) Categories(ctx context.Context) ([]domain.Category, error) {
	m.mu.Lock()
	m.CategoriesCallCount++
	m.mu.Unlock()

	if m.CategoriesFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.CategoriesFn(ctx)
}

// AddCategory invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) AddCategory(ctx context.Context, cat domain.Category) error {
	m.mu.Lock()
	m.AddCategoryCallCount++
	m.AddCategoryCallArgs = append(m.AddCategoryCallArgs, cat)
	m.mu.Unlock()

	if m.AddCategoryFn == nil {
		return nil
	}
	return m.AddCategoryFn(ctx, cat)
}

// UpdateCategoryColor invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) UpdateCategoryColor(ctx context.Context, name, color string) error {
	m.mu.Lock()
	m.UpdateCategoryColorCallCount++
	m.UpdateCategoryColorCallArgs = append(m.UpdateCategoryColorCallArgs, []string{name, color})
	m.mu.Unlock()

	if m.UpdateCategoryColorFn == nil {
		return nil
	}
	return m.UpdateCategoryColorFn(ctx, name, color)
}
