package mocks

import (
	"context"
	"errors"

	service "github.com/f2fin/directory-dashboard/internal/services"
)

// MockResourceService implements service.ResourceService for testing
type MockResourceService[T any] struct {
	KeyValue   string
	ListFunc   func(ctx context.Context, filter, query string) ([]T, error)
	GetFunc    func(ctx context.Context, id string) (T, error)
	CreateFunc func(ctx context.Context, record T) (T, error)
}

func (m *MockResourceService[T]) Key() string {
	return m.KeyValue
}

func (m *MockResourceService[T]) List(ctx context.Context, filter, query string) ([]T, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, query)
	}
	return nil, errors.New("List not implemented")
}

func (m *MockResourceService[T]) Get(ctx context.Context, id string) (T, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	var zero T
	return zero, errors.New("Get not implemented")
}

func (m *MockResourceService[T]) Create(ctx context.Context, record T) (T, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	var zero T
	return zero, errors.New("Create not implemented")
}

// MockSummaryService implements service.SummaryService for testing
type MockSummaryService struct {
	SummarizeFunc func(ctx context.Context) (service.Summary, error)
}

func (m *MockSummaryService) Summarize(ctx context.Context) (service.Summary, error) {
	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx)
	}
	return service.Summary{}, errors.New("Summarize not implemented")
}
