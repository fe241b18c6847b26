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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add writes a favorite snapshot for the user and place.
func (srv *favoriteService) Add(ctx context.Context, userID string, place *entity.Place) error {
	if userID == "" {
		return errors.Wrap(domainerrors.ErrAuthRequired, "favorites require a session")
	}
	if place == nil || place.ID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "place is required")
	}

	if err := srv.favoriteRepo.Put(ctx, userID, place); err != nil {
		srv.log(ctx).Error("Failed to add favorite",
			slog.String("userID", userID),
			slog.String("placeID", place.ID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to add favorite")
	}
	srv.log(ctx).Debug("Favorite added", slog.String("userID", userID), slog.String("placeID", place.ID))

	return nil
}

// Remove deletes the favorite entry if present.
func (srv *favoriteService) Remove(ctx context.Context, userID, placeID string) error {
	if userID == "" {
		return errors.Wrap(domainerrors.ErrAuthRequired, "favorites require a session")
	}
	if placeID == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "place id is required")
	}

	if err := srv.favoriteRepo.Delete(ctx, userID, placeID); err != nil {
		srv.log(ctx).Error("Failed to remove favorite",
			slog.String("userID", userID),
			slog.String("placeID", placeID),
			slog.Any("error", err))

		return errors.Wrap(err, "failed to remove favorite")
	}
	srv.log(ctx).Debug("Favorite removed", slog.String("userID", userID), slog.String("placeID", placeID))

	return nil
}

// ListForUser returns all favorite snapshots for the user.
func (srv *favoriteService) ListForUser(ctx context.Context, userID string) ([]*entity.FavoriteEntry, error) {
	if userID == "" {
		return nil, errors.Wrap(domainerrors.ErrAuthRequired, "favorites require a session")
	}

	entries, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorites")
	}
	if entries == nil {
		entries = []*entity.FavoriteEntry{}
	}

	return entries, nil
}

// Toggle flips the favorite state and returns the new state. The caller's
// view of the state changes only after the store write resolves.
func (srv *favoriteService) Toggle(ctx context.Context, userID string, place *entity.Place, currentlyFavorite bool) (bool, error) {
	if currentlyFavorite {
		if place == nil {
			return currentlyFavorite, errors.Wrap(domainerrors.ErrValidationFailed, "place is required")
		}
		if err := srv.Remove(ctx, userID, place.ID); err != nil {
			return currentlyFavorite, err
		}

		return false, nil
	}

	if err := srv.Add(ctx, userID, place); err != nil {
		return currentlyFavorite, err
	}

	return true, nil
}
