// Package blobstore implements the profile photo store on a Cloud Storage
// bucket through the gocloud.dev portable blob API.
package blobstore

import (
	"context"
	"log/slog"
	"time"

	"wander/config"
	"wander/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/gcsblob"
	"gocloud.dev/gcerrors"
)

// store implements service.BlobStorage on a blob.Bucket.
type store struct {
	bucket *blob.Bucket
	expiry time.Duration
	logger *slog.Logger
}

// Params holds dependencies for the blob store, injected by Fx.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New opens the configured bucket and ties its shutdown to the
// application lifecycle.
func New(params Params) (service.BlobStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), "gs://"+params.Config.Storage.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", params.Config.Storage.Bucket)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing blob bucket")

			return bucket.Close()
		},
	})

	return newWithBucket(bucket, params.Config.Storage.SignedURLExpiry, params.Logger), nil
}

// newWithBucket wires an already opened bucket, used directly by tests.
func newWithBucket(bucket *blob.Bucket, expiry time.Duration, logger *slog.Logger) service.BlobStorage {
	return &store{
		bucket: bucket,
		expiry: expiry,
		logger: logger,
	}
}

// Upload writes the content at the key, overwriting any existing blob.
func (s *store) Upload(ctx context.Context, key string, data []byte) error {
	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return errors.Wrapf(err, "failed to upload blob %s", key)
	}
	s.logger.Debug("Blob uploaded", slog.String("key", key), slog.Int("bytes", len(data)))

	return nil
}

// Delete removes the blob at the key.
func (s *store) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return service.ErrBlobNotFound
		}

		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// DownloadURL returns a signed URL for the blob at the key.
func (s *store) DownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: s.expiry})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign url for blob %s", key)
	}

	return url, nil
}
