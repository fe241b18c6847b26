// Package service provides hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"context"
	"testing"

	"wander/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockIdentityProvider is a mock implementation of service.IdentityProvider.
type MockIdentityProvider struct {
	mock.Mock
}

// NewMockIdentityProvider creates a mock bound to the test's lifecycle.
func NewMockIdentityProvider(t *testing.T) *MockIdentityProvider {
	m := &MockIdentityProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	args := m.Called(ctx, email, password)

	var identity *entity.Identity
	if v := args.Get(0); v != nil {
		identity = v.(*entity.Identity)
	}

	return identity, args.Error(1)
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	args := m.Called(ctx, email, password)

	var identity *entity.Identity
	if v := args.Get(0); v != nil {
		identity = v.(*entity.Identity)
	}

	return identity, args.Error(1)
}

func (m *MockIdentityProvider) SignOut(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *MockIdentityProvider) SendPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)

	return args.Error(0)
}

func (m *MockIdentityProvider) OnChange(listener func(*entity.Identity)) {
	m.Called(listener)
}
