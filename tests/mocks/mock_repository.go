package mocks

import (
	"context"
	"errors"
)

// MockRepository implements repositories.Repository for testing
type MockRepository[T any] struct {
	ListFunc   func(ctx context.Context) ([]T, error)
	CreateFunc func(ctx context.Context, record T) (T, error)

	ListCalls   int
	CreateCalls int
	Created     []T
}

func (m *MockRepository[T]) List(ctx context.Context) ([]T, error) {
	m.ListCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("List not implemented")
}

func (m *MockRepository[T]) Create(ctx context.Context, record T) (T, error) {
	m.CreateCalls++
	m.Created = append(m.Created, record)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return record, nil
}
