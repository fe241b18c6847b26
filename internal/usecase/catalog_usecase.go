package usecase

import (
	"context"

	"wander/internal/domain/entity"
)

// CatalogUsecase produces the list of places for a selected category.
type CatalogUsecase interface {
	// ListByCategory fetches all places in the given category, in store
	// order. The returned slice is never nil: on a read failure it is
	// empty and the error carries ErrFetchFailed.
	//
	// Only the result of the most recently issued call is applied. When a
	// newer call supersedes this one while its fetch is in flight, the
	// late result is discarded and the currently applied list is returned
	// instead.
	ListByCategory(ctx context.Context, category string) ([]*entity.Place, error)

	// Current returns the most recently applied category and list.
	Current() (entity.Category, []*entity.Place)
}
