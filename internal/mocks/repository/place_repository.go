// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"wander/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPlaceRepository is a mock implementation of repository.PlaceRepository.
type MockPlaceRepository struct {
	mock.Mock
}

// NewMockPlaceRepository creates a mock bound to the test's lifecycle.
func NewMockPlaceRepository(t *testing.T) *MockPlaceRepository {
	m := &MockPlaceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPlaceRepository) FindByID(ctx context.Context, id string) (*entity.Place, error) {
	args := m.Called(ctx, id)

	var place *entity.Place
	if v := args.Get(0); v != nil {
		place = v.(*entity.Place)
	}

	return place, args.Error(1)
}

func (m *MockPlaceRepository) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Place, error) {
	args := m.Called(ctx, category)

	var places []*entity.Place
	if v := args.Get(0); v != nil {
		places = v.([]*entity.Place)
	}

	return places, args.Error(1)
}
