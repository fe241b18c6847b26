package impl

import (
	"context"
	"log/slog"

	deliverycontext "wander/internal/delivery/context"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	"wander/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profilePhotoKey is the blob key for a user's single profile photo. All
// replacements reuse the same key, so at most one blob exists per user.
func profilePhotoKey(userID string) string {
	return "fotos_perfil/" + userID
}

// photoService implements the ProfilePhotoUsecase interface.
type photoService struct {
	blobs       service.BlobStorage
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// PhotoServiceParams holds dependencies for photoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	Blobs       service.BlobStorage
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.ProfilePhotoUsecase {
	return &photoService{
		blobs:       params.Blobs,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Replace swaps the user's profile photo: delete the old blob, upload the
// new one under the same key, resolve its URL and point the profile at it.
func (srv *photoService) Replace(ctx context.Context, userID string, image []byte) (string, error) {
	if userID == "" {
		return "", errors.Wrap(domainerrors.ErrAuthRequired, "photo replacement requires a session")
	}
	if len(image) == 0 {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "image is required")
	}

	key := profilePhotoKey(userID)
	srv.log(ctx).Info("Replacing profile photo", slog.String("userID", userID), slog.Int("bytes", len(image)))

	// 1. Delete the previous blob. A user who never uploaded one has
	// nothing to delete; that is not an error.
	if err := srv.blobs.Delete(ctx, key); err != nil && !errors.Is(err, service.ErrBlobNotFound) {
		srv.log(ctx).Error("Failed to delete previous photo", slog.String("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to delete previous photo")
	}

	// 2. Upload the replacement. A failure here leaves the user with no
	// photo until retried; the error is surfaced so the UI can say so.
	if err := srv.blobs.Upload(ctx, key, image); err != nil {
		srv.log(ctx).Error("Failed to upload replacement photo", slog.String("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to upload replacement photo")
	}

	// 3. Resolve the URL of the new blob.
	photoURL, err := srv.blobs.DownloadURL(ctx, key)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve photo URL", slog.String("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to resolve photo URL")
	}

	// 4. Point the profile document at the new URL.
	if err := srv.profileRepo.SetPhotoURL(ctx, userID, photoURL); err != nil {
		srv.log(ctx).Error("Failed to update profile photo URL", slog.String("userID", userID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to update profile photo URL")
	}

	srv.log(ctx).Debug("Profile photo replaced", slog.String("userID", userID))

	return photoURL, nil
}
