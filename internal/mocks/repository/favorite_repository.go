package repository

import (
	"context"
	"testing"

	"wander/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository is a mock implementation of repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

// NewMockFavoriteRepository creates a mock bound to the test's lifecycle.
func NewMockFavoriteRepository(t *testing.T) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFavoriteRepository) Put(ctx context.Context, userID string, place *entity.Place) error {
	args := m.Called(ctx, userID, place)

	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, placeID string) error {
	args := m.Called(ctx, userID, placeID)

	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, placeID string) (bool, error) {
	args := m.Called(ctx, userID, placeID)

	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.FavoriteEntry, error) {
	args := m.Called(ctx, userID)

	var entries []*entity.FavoriteEntry
	if v := args.Get(0); v != nil {
		entries = v.([]*entity.FavoriteEntry)
	}

	return entries, args.Error(1)
}
