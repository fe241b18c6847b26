package repository

import (
	"context"

	"wander/internal/domain/entity"
)

// FavoriteRepository persists per-user favorite entries, keyed by
// (user id, place id). The stored value is a snapshot of the place.
type FavoriteRepository interface {
	// Put writes the favorite entry for (userID, place.ID), overwriting
	// any existing snapshot. Re-adding is not an error.
	Put(ctx context.Context, userID string, place *entity.Place) error

	// Delete removes the favorite entry if present. Deleting an absent
	// entry is a no-op, not an error.
	Delete(ctx context.Context, userID, placeID string) error

	// Exists reports whether a favorite entry exists for the pair.
	Exists(ctx context.Context, userID, placeID string) (bool, error)

	// ListByUser retrieves all favorite snapshots for the user, in the
	// order the store returns them.
	ListByUser(ctx context.Context, userID string) ([]*entity.FavoriteEntry, error)
}
