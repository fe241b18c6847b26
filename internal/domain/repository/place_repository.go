// Package repository defines the interfaces for the remote document store.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"wander/internal/domain/entity"
)

// ErrPlaceNotFound is a domain-specific error returned when a place
// document does not exist.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository reads the catalog of places. The catalog is owned by the
// store; there are no writes on this interface.
type PlaceRepository interface {
	// FindByID retrieves a single place by its document key.
	FindByID(ctx context.Context, id string) (*entity.Place, error)

	// ListByCategory retrieves all places whose category field equals the
	// given category, in the order the store returns them. No client-side
	// sort is imposed.
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Place, error)
}
