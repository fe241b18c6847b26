package usecase

import (
	"context"

	"wander/internal/domain/entity"
)

// PlaceDetailUsecase resolves one place and its favorite status for the
// current user.
type PlaceDetailUsecase interface {
	// Load fetches a single place by id, failing with ErrNotFound when
	// the document is absent.
	Load(ctx context.Context, placeID string) (*entity.Place, error)

	// IsFavorite reports whether the user has favorited the place. An
	// empty userID means no session: the answer is false and the store is
	// not contacted.
	IsFavorite(ctx context.Context, userID, placeID string) (bool, error)
}
