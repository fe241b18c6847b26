// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wander/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new traveler.
// Photo holds the raw profile image bytes and must not be empty.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Username string `json:"username" validate:"required"`
	Age      int    `json:"age" validate:"gte=0"`
	Photo    []byte `json:"photo"`
}

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUsecase owns the signed-in/out lifecycle and keeps the locally
// materialized profile in sync with the identity provider's session feed.
type SessionUsecase interface {
	// OnSessionChanged applies one session-change notification from the
	// identity provider. Notifications are processed strictly in the
	// order they are delivered: a handler finishes updating state before
	// the next notification is applied.
	OnSessionChanged(ctx context.Context, identity *entity.Identity)

	// Register creates the identity, uploads the profile photo and writes
	// the profile document. Input validation failures are reported before
	// any remote call. A failure after identity creation is not rolled
	// back; the resulting identity-without-profile state is handled by
	// OnSessionChanged's no-profile path.
	Register(ctx context.Context, input *RegisterInput) (*entity.UserProfile, error)

	// Login delegates to the identity provider. Provider rejections are
	// surfaced verbatim.
	Login(ctx context.Context, input *LoginInput) (*entity.Identity, error)

	// RequestPasswordReset asks the provider for a reset email. An empty
	// address fails locally; the remote outcome never reveals whether the
	// address is registered.
	RequestPasswordReset(ctx context.Context, email string) error

	// Logout delegates to the provider. The provider's session-changed
	// notification is what clears local state.
	Logout(ctx context.Context) error

	// Current returns a snapshot of the session.
	Current() entity.Session

	// Subscribe registers an observer invoked on every session
	// transition, in transition order.
	Subscribe(observer func(entity.Session))
}
