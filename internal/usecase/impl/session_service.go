// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "wander/internal/delivery/context"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/repository"
	"wander/internal/domain/service"
	"wander/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	identity    service.IdentityProvider
	profileRepo repository.ProfileRepository
	blobs       service.BlobStorage
	validate    *validator.Validate
	logger      *slog.Logger

	// mu serializes session-change handling and guards the session value.
	// A slow profile fetch must finish updating state before the next
	// provider notification is applied, otherwise profile data can be
	// attributed to the wrong identity.
	mu        sync.Mutex
	session   entity.Session
	observers []func(entity.Session)
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Identity    service.IdentityProvider
	ProfileRepo repository.ProfileRepository
	Blobs       service.BlobStorage
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		identity:    params.Identity,
		profileRepo: params.ProfileRepo,
		blobs:       params.Blobs,
		validate:    validator.New(),
		logger:      params.Logger,
		session:     entity.Session{State: entity.SessionSignedOut},
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OnSessionChanged applies one session-change notification from the
// identity provider.
func (srv *sessionService) OnSessionChanged(ctx context.Context, identity *entity.Identity) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if identity == nil {
		srv.log(ctx).Info("Session change: signed out")
		srv.apply(entity.Session{State: entity.SessionSignedOut})

		return
	}

	srv.log(ctx).Info("Session change: identity established", slog.String("uid", identity.UID))

	// The loading window is observable: the UI shows it distinctly from
	// both signed-out and the no-profile outcome.
	srv.apply(entity.Session{State: entity.SessionLoadingProfile, Identity: identity})

	profile, err := srv.profileRepo.FindByID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Warn("No profile document for identity", slog.String("uid", identity.UID))
		} else {
			srv.log(ctx).Error("Failed to fetch profile", slog.String("uid", identity.UID), slog.Any("error", err))
		}
		srv.apply(entity.Session{State: entity.SessionSignedInNoProfile, Identity: identity})

		return
	}

	srv.apply(entity.Session{State: entity.SessionSignedIn, Identity: identity, Profile: profile})
}

// apply stores the new session value and notifies observers in order.
// Callers hold srv.mu; observers must not call back into the service.
func (srv *sessionService) apply(session entity.Session) {
	srv.session = session
	for _, observer := range srv.observers {
		observer(session)
	}
}

// Register orchestrates the complete registration process.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.UserProfile, error) {
	// Local validation happens before any provider or store call.
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "registration input is required")
	}
	if err := srv.validate.Struct(input); err != nil {
		srv.log(ctx).Warn("Registration input validation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	if len(input.Photo) == 0 {
		srv.log(ctx).Warn("Registration without profile photo", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "profile photo is required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	identity, err := srv.identity.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity")
	}

	// From here on nothing is rolled back. An identity without a profile
	// document is an accepted partial state; OnSessionChanged surfaces it
	// as signed-in-no-profile with a retry affordance at the UI.
	key := profilePhotoKey(identity.UID)
	if err := srv.blobs.Upload(ctx, key, input.Photo); err != nil {
		srv.log(ctx).Error("Failed to upload registration photo", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload profile photo")
	}

	photoURL, err := srv.blobs.DownloadURL(ctx, key)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve photo URL", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve photo URL")
	}

	profile := &entity.UserProfile{
		ID:       identity.UID,
		Email:    input.Email,
		Username: input.Username,
		Age:      input.Age,
		PhotoURL: photoURL,
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to write profile document", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to write profile document")
	}

	// The provider already established a session on sign-up; an explicit
	// re-login here would be redundant.
	srv.log(ctx).Debug("Registration completed", slog.String("uid", identity.UID))

	return profile, nil
}

// Login delegates to the identity provider.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Identity, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "login input is required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	identity, err := srv.identity.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}
	srv.log(ctx).Debug("Login succeeded", slog.String("uid", identity.UID))

	return identity, nil
}

// RequestPasswordReset asks the provider for a reset email.
func (srv *sessionService) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	}

	if err := srv.identity.SendPasswordReset(ctx, email); err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.Any("error", err))

		return errors.Wrap(err, "failed to request password reset")
	}

	return nil
}

// Logout delegates to the provider. Local state is cleared only by the
// provider's session-changed notification.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.log(ctx).Info("Logging out")

	if err := srv.identity.SignOut(ctx); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}

	return nil
}

// Current returns a snapshot of the session.
func (srv *sessionService) Current() entity.Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.session
}

// Subscribe registers an observer for session transitions.
func (srv *sessionService) Subscribe(observer func(entity.Session)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.observers = append(srv.observers, observer)
}
