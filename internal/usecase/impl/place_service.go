package impl

import (
	"context"
	"log/slog"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// placeService implements the PlaceDetailUsecase interface.
type placeService struct {
	placeRepo    repository.PlaceRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	PlaceRepo    repository.PlaceRepository
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceDetailUsecase {
	return &placeService{
		placeRepo:    params.PlaceRepo,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Load fetches a single place by id.
func (srv *placeService) Load(ctx context.Context, placeID string) (*entity.Place, error) {
	if placeID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "place id is required")
	}

	place, err := srv.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "place not found")
		}
		srv.log(ctx).Error("Failed to load place", slog.String("placeID", placeID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrFetchFailed, err.Error())
	}

	return place, nil
}

// IsFavorite reports whether the user has favorited the place.
func (srv *placeService) IsFavorite(ctx context.Context, userID, placeID string) (bool, error) {
	// No session means no favorites; the store is not contacted.
	if userID == "" {
		return false, nil
	}

	exists, err := srv.favoriteRepo.Exists(ctx, userID, placeID)
	if err != nil {
		srv.log(ctx).Error("Failed to check favorite status",
			slog.String("userID", userID),
			slog.String("placeID", placeID),
			slog.Any("error", err))

		return false, errors.Wrap(err, "failed to check favorite status")
	}

	return exists, nil
}
