package service

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Delete when no blob exists at the key.
// Callers that replace a blob tolerate it: the first upload ever has
// nothing to delete.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStorage is the remote key-addressed binary store holding profile
// photos.
type BlobStorage interface {
	// Upload writes the content at the given key, overwriting any
	// existing blob.
	Upload(ctx context.Context, key string, data []byte) error

	// Delete removes the blob at the key, returning ErrBlobNotFound when
	// nothing is stored there.
	Delete(ctx context.Context, key string) error

	// DownloadURL returns a retrievable URL for the blob at the key.
	DownloadURL(ctx context.Context, key string) (string, error)
}
