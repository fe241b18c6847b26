package usecase

import (
	"context"

	"wander/internal/domain/entity"
)

// FavoriteUsecase toggles and reads the favorite relation between a user
// and a place. Every operation requires a session.
type FavoriteUsecase interface {
	// Add writes a favorite snapshot for (userID, place.ID). Re-adding
	// overwrites the snapshot without error.
	Add(ctx context.Context, userID string, place *entity.Place) error

	// Remove deletes the entry if present; removing an absent entry is
	// not an error.
	Remove(ctx context.Context, userID, placeID string) error

	// ListForUser returns all favorite snapshots in store order.
	ListForUser(ctx context.Context, userID string) ([]*entity.FavoriteEntry, error)

	// Toggle removes the favorite when currentlyFavorite is true and adds
	// it otherwise, returning the new state. Callers update displayed
	// state only after Toggle resolves, so the UI never shows a favorite
	// state the store does not hold.
	Toggle(ctx context.Context, userID string, place *entity.Place, currentlyFavorite bool) (bool, error)
}
