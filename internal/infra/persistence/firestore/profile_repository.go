package firestore

import (
	"context"
	"log/slog"

	"wander/internal/domain/entity"
	"wander/internal/domain/repository"

	cloudstore "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "usuarios"

// profileDoc mirrors the profile document wire format.
type profileDoc struct {
	Email    string `firestore:"email"`
	Username string `firestore:"username"`
	Age      int    `firestore:"edad"`
	PhotoURL string `firestore:"fotoURL"`
}

// profileRepository implements repository.ProfileRepository on Firestore.
type profileRepository struct {
	client *cloudstore.Client
	logger *slog.Logger
}

// ProfileRepositoryParams holds dependencies for profileRepository, injected by Fx.
type ProfileRepositoryParams struct {
	fx.In

	Client *cloudstore.Client
	Logger *slog.Logger
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(params ProfileRepositoryParams) repository.ProfileRepository {
	return &profileRepository{
		client: params.Client,
		logger: params.Logger,
	}
}

// FindByID retrieves the profile document keyed by the identity id.
func (r *profileRepository) FindByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snapshot, err := r.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrapf(err, "failed to read profile %s", uid)
	}

	var doc profileDoc
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile %s", uid)
	}

	return &entity.UserProfile{
		ID:       snapshot.Ref.ID,
		Email:    doc.Email,
		Username: doc.Username,
		Age:      doc.Age,
		PhotoURL: doc.PhotoURL,
	}, nil
}

// Create writes the profile document at registration time.
func (r *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	doc := profileDoc{
		Email:    profile.Email,
		Username: profile.Username,
		Age:      profile.Age,
		PhotoURL: profile.PhotoURL,
	}

	if _, err := r.client.Collection(usersCollection).Doc(profile.ID).Set(ctx, doc); err != nil {
		return errors.Wrapf(err, "failed to write profile %s", profile.ID)
	}

	return nil
}

// SetPhotoURL rewrites only the photo URL field of an existing profile.
func (r *profileRepository) SetPhotoURL(ctx context.Context, uid, url string) error {
	_, err := r.client.Collection(usersCollection).Doc(uid).Update(ctx, []cloudstore.Update{
		{Path: "fotoURL", Value: url},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrProfileNotFound
		}

		return errors.Wrapf(err, "failed to update photo url for %s", uid)
	}

	return nil
}
