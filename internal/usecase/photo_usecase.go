package usecase

import "context"

// ProfilePhotoUsecase replaces a user's profile photo so that at most one
// logical photo is retained per user.
type ProfilePhotoUsecase interface {
	// Replace deletes the previous blob (a missing blob is tolerated),
	// uploads the new image at the same key, obtains its URL and points
	// the profile document at it, in that order. A failure after the
	// delete leaves the user with no photo until retried; this is
	// surfaced, not masked.
	//
	// Replace is not safe to run concurrently for the same user; callers
	// serialize calls per user id.
	Replace(ctx context.Context, userID string, image []byte) (string, error)
}
