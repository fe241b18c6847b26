// Package service defines interfaces for external capabilities consumed by
// the application layer: the identity provider and the blob store.
package service

import (
	"context"

	"wander/internal/domain/entity"
)

// IdentityProvider is the remote credential authority. Sign-in and sign-up
// establish a session; every session transition, including sign-out, is
// reported through the OnChange feed, which is the single source of truth
// for downstream session state.
type IdentityProvider interface {
	// SignIn authenticates with email and password. Provider rejections
	// are returned as AuthError with the provider's reason intact.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignUp creates a new identity and establishes its session.
	SignUp(ctx context.Context, email, password string) (*entity.Identity, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// SendPasswordReset asks the provider to email a reset link. Its
	// outcome must not reveal whether the address is registered.
	SendPasswordReset(ctx context.Context, email string) error

	// OnChange registers a listener for session changes. Listeners are
	// invoked sequentially, in the order changes occur; a nil identity
	// means signed out.
	OnChange(listener func(*entity.Identity))
}
