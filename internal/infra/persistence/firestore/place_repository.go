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

const placesCollection = "lugares"

// placeRepository implements repository.PlaceRepository on Firestore.
type placeRepository struct {
	client *cloudstore.Client
	logger *slog.Logger
}

// PlaceRepositoryParams holds dependencies for placeRepository, injected by Fx.
type PlaceRepositoryParams struct {
	fx.In

	Client *cloudstore.Client
	Logger *slog.Logger
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(params PlaceRepositoryParams) repository.PlaceRepository {
	return &placeRepository{
		client: params.Client,
		logger: params.Logger,
	}
}

// FindByID retrieves a single place document.
func (r *placeRepository) FindByID(ctx context.Context, id string) (*entity.Place, error) {
	snapshot, err := r.client.Collection(placesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrapf(err, "failed to read place %s", id)
	}

	var doc placeDoc
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode place %s", id)
	}

	return doc.toEntity(snapshot.Ref.ID), nil
}

// ListByCategory retrieves all places whose category field equals the
// given category, in store order.
func (r *placeRepository) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.Place, error) {
	iter := r.client.Collection(placesCollection).
		Where("categoria", "==", category.String()).
		Documents(ctx)
	defer iter.Stop()

	places := make([]*entity.Place, 0)
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list places in %s", category)
		}

		var doc placeDoc
		if err := snapshot.DataTo(&doc); err != nil {
			// One malformed document must not sink the whole listing.
			r.logger.Warn("Skipping undecodable place document",
				slog.String("placeID", snapshot.Ref.ID),
				slog.Any("error", err))

			continue
		}

		places = append(places, doc.toEntity(snapshot.Ref.ID))
	}

	return places, nil
}
