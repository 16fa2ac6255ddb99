package mocks

import (
	"context"
	"errors"
)

// MockAuthRepository implements repositories.AuthRepository for testing
type MockAuthRepository struct {
	LoginFunc func(ctx context.Context, email, password string) (string, error)
}

func (m *MockAuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", errors.New("Login not implemented")
}
