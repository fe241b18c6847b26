package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// appliedListing is the most recently applied catalog result.
type appliedListing struct {
	request  uint64
	category entity.Category
	places   []*entity.Place
}

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	placeRepo repository.PlaceRepository
	logger    *slog.Logger

	// mu guards the issue counter and the applied result. Requests are
	// numbered at issue time; a result is applied only if no newer
	// request was issued while its fetch was in flight. Superseded
	// results are discarded, not cancelled.
	mu      sync.Mutex
	issued  uint64
	applied appliedListing
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	PlaceRepo repository.PlaceRepository
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		placeRepo: params.PlaceRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// clonePlaces copies the slice so callers cannot reorder or replace
// entries in the cached applied list.
func clonePlaces(places []*entity.Place) []*entity.Place {
	out := make([]*entity.Place, len(places))
	copy(out, places)

	return out
}

// ListByCategory fetches all places in the given category, applying only
// the most recently issued request's result.
func (srv *catalogService) ListByCategory(ctx context.Context, rawCategory string) ([]*entity.Place, error) {
	category, err := entity.ParseCategory(rawCategory)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	srv.mu.Lock()
	srv.issued++
	request := srv.issued
	srv.mu.Unlock()

	srv.log(ctx).Debug("Loading catalog", slog.String("category", category.String()), slog.Uint64("request", request))

	places, fetchErr := srv.placeRepo.ListByCategory(ctx, category)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if request != srv.issued {
		// A newer request was issued while this fetch was in flight. Its
		// result wins regardless of arrival order; this one is discarded
		// and the caller sees whatever is currently applied.
		srv.log(ctx).Debug("Discarding stale catalog result",
			slog.String("category", category.String()),
			slog.Uint64("request", request),
			slog.Uint64("latest", srv.issued))

		return clonePlaces(srv.applied.places), nil
	}

	if fetchErr != nil {
		srv.log(ctx).Error("Failed to load catalog", slog.String("category", category.String()), slog.Any("error", fetchErr))
		srv.applied = appliedListing{request: request, category: category, places: []*entity.Place{}}

		return []*entity.Place{}, errors.Wrap(domainerrors.ErrFetchFailed, fetchErr.Error())
	}

	if places == nil {
		places = []*entity.Place{}
	}
	srv.applied = appliedListing{request: request, category: category, places: clonePlaces(places)}
	srv.log(ctx).Debug("Catalog loaded", slog.String("category", category.String()), slog.Int("count", len(places)))

	return places, nil
}

// Current returns the most recently applied category and list.
func (srv *catalogService) Current() (entity.Category, []*entity.Place) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.applied.category, clonePlaces(srv.applied.places)
}
