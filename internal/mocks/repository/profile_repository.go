package repository

import (
	"context"
	"testing"

	"wander/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock implementation of repository.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

// NewMockProfileRepository creates a mock bound to the test's lifecycle.
func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	args := m.Called(ctx, uid)

	var profile *entity.UserProfile
	if v := args.Get(0); v != nil {
		profile = v.(*entity.UserProfile)
	}

	return profile, args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *MockProfileRepository) SetPhotoURL(ctx context.Context, uid, url string) error {
	args := m.Called(ctx, uid, url)

	return args.Error(0)
}
