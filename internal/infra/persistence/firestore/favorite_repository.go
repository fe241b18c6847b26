package firestore

import (
	"context"
	"log/slog"

	"wander/internal/domain/entity"
	"wander/internal/domain/repository"

	cloudstore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const favoritesCollection = "favoritos"

// favoriteRepository implements repository.FavoriteRepository on Firestore.
// Entries live in a per-user subcollection keyed by place id; the document
// body is a snapshot of the place at the time it was favorited.
type favoriteRepository struct {
	client *cloudstore.Client
	logger *slog.Logger
}

// FavoriteRepositoryParams holds dependencies for favoriteRepository, injected by Fx.
type FavoriteRepositoryParams struct {
	fx.In

	Client *cloudstore.Client
	Logger *slog.Logger
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(params FavoriteRepositoryParams) repository.FavoriteRepository {
	return &favoriteRepository{
		client: params.Client,
		logger: params.Logger,
	}
}

func (r *favoriteRepository) entryRef(userID, placeID string) *cloudstore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(userID).
		Collection(favoritesCollection).Doc(placeID)
}

// Put writes the favorite snapshot, overwriting any existing one.
func (r *favoriteRepository) Put(ctx context.Context, userID string, place *entity.Place) error {
	if _, err := r.entryRef(userID, place.ID).Set(ctx, encodePlace(place)); err != nil {
		return errors.Wrapf(err, "failed to write favorite %s/%s", userID, place.ID)
	}

	return nil
}

// Delete removes the entry. Firestore treats deleting an absent document
// as success, which matches the required no-op semantics.
func (r *favoriteRepository) Delete(ctx context.Context, userID, placeID string) error {
	if _, err := r.entryRef(userID, placeID).Delete(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete favorite %s/%s", userID, placeID)
	}

	return nil
}

// Exists reports whether a favorite entry exists for the pair.
func (r *favoriteRepository) Exists(ctx context.Context, userID, placeID string) (bool, error) {
	_, err := r.entryRef(userID, placeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to read favorite %s/%s", userID, placeID)
	}

	return true, nil
}

// ListByUser retrieves all favorite snapshots for the user, in store order.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.FavoriteEntry, error) {
	iter := r.client.Collection(usersCollection).Doc(userID).
		Collection(favoritesCollection).Documents(ctx)
	defer iter.Stop()

	entries := make([]*entity.FavoriteEntry, 0)
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list favorites for %s", userID)
		}

		var doc placeDoc
		if err := snapshot.DataTo(&doc); err != nil {
			r.logger.Warn("Skipping undecodable favorite document",
				slog.String("userID", userID),
				slog.String("placeID", snapshot.Ref.ID),
				slog.Any("error", err))

			continue
		}

		entries = append(entries, &entity.FavoriteEntry{
			UserID:  userID,
			PlaceID: snapshot.Ref.ID,
			Place:   doc.toEntity(snapshot.Ref.ID),
		})
	}

	return entries, nil
}
