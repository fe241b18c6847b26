package repository

import (
	"context"
	"errors"

	"wander/internal/domain/entity"
)

// ErrProfileNotFound is a domain-specific error returned when no profile
// document exists for an identity. Registration is not transactional, so
// an identity without a profile is an expected partial state.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists user profile documents keyed by identity id.
type ProfileRepository interface {
	// FindByID retrieves the profile document for the given identity id.
	FindByID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Create writes the profile document at registration time. All fields
	// except the photo URL are write-once.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// SetPhotoURL rewrites only the photo URL field of an existing
	// profile document.
	SetPhotoURL(ctx context.Context, uid, url string) error
}
