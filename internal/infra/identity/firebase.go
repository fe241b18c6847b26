// Package identity implements the identity provider against the Firebase
// Identity Toolkit REST API.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"wander/config"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const requestTimeout = 15 * time.Second

// Provider talks to the Identity Toolkit REST API and feeds session
// changes to registered listeners.
type Provider struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	// mu serializes session mutations and listener dispatch so listeners
	// observe changes in the order they occur.
	mu        sync.Mutex
	current   *entity.Identity
	listeners []func(*entity.Identity)
}

// Params holds dependencies for the Provider, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider is the constructor for Provider.
func NewProvider(params Params) (service.IdentityProvider, error) {
	if params.Config.Firebase == nil || params.Config.Firebase.APIKey == "" {
		return nil, errors.New("firebase api key is required")
	}

	return &Provider{
		endpoint:   params.Config.Firebase.AuthEndpoint,
		apiKey:     params.Config.Firebase.APIKey,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     params.Logger,
	}, nil
}

// tokenResponse is the shared success shape of signInWithPassword and signUp.
type tokenResponse struct {
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

// errorResponse is the Identity Toolkit failure shape. The message field
// carries the provider's reason code, e.g. EMAIL_NOT_FOUND.
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn authenticates with email and password.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := p.exchangeCredentials(ctx, "accounts:signInWithPassword", email, password)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Identity signed in", slog.String("uid", identity.UID))
	p.emit(identity)

	return identity, nil
}

// SignUp creates a new identity and establishes its session.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*entity.Identity, error) {
	identity, err := p.exchangeCredentials(ctx, "accounts:signUp", email, password)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("Identity created", slog.String("uid", identity.UID))
	p.emit(identity)

	return identity, nil
}

// SignOut ends the current session. The provider holds no server-side
// session for password sign-in; signing out is a local transition.
func (p *Provider) SignOut(_ context.Context) error {
	p.emit(nil)

	return nil
}

// SendPasswordReset asks the provider to email a reset link. An unknown
// address is reported as success so the endpoint cannot be used to probe
// which emails are registered.
func (p *Provider) SendPasswordReset(ctx context.Context, email string) error {
	payload := map[string]string{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}

	var out struct {
		Email string `json:"email"`
	}
	if err := p.post(ctx, "accounts:sendOobCode", payload, &out); err != nil {
		var authErr *domainerrors.AuthError
		if errors.As(err, &authErr) && authErr.Reason() == "EMAIL_NOT_FOUND" {
			p.logger.Debug("Password reset for unregistered address suppressed")

			return nil
		}

		return err
	}

	return nil
}

// OnChange registers a listener for session changes.
func (p *Provider) OnChange(listener func(*entity.Identity)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.listeners = append(p.listeners, listener)
}

// Current returns the identity of the established session, or nil.
func (p *Provider) Current() *entity.Identity {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current
}

// emit records the session change and notifies listeners in order.
func (p *Provider) emit(identity *entity.Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = identity
	for _, listener := range p.listeners {
		listener(identity)
	}
}

// exchangeCredentials posts an email/password pair to the given Identity
// Toolkit method and maps the response to an Identity.
func (p *Provider) exchangeCredentials(ctx context.Context, method, email, password string) (*entity.Identity, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var out tokenResponse
	if err := p.post(ctx, method, payload, &out); err != nil {
		return nil, err
	}

	return &entity.Identity{
		UID:          out.LocalID,
		Email:        out.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresAt:    p.tokenExpiry(out),
	}, nil
}

// tokenExpiry derives the session expiry from the ID token's exp claim,
// falling back to the expiresIn field when the token cannot be parsed.
func (p *Provider) tokenExpiry(out tokenResponse) time.Time {
	// The token came over TLS from the issuer itself, so its signature is
	// not re-verified here; only the exp claim is read.
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(out.IDToken, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}

	seconds, err := strconv.Atoi(out.ExpiresIn)
	if err != nil {
		seconds = 3600
	}

	return time.Now().Add(time.Duration(seconds) * time.Second)
}

// post sends one Identity Toolkit request and decodes the response.
// Non-2xx responses become AuthError with the provider's reason intact.
func (p *Provider) post(ctx context.Context, method string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode request")
	}

	url := p.endpoint + "/" + method + "?key=" + p.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s request failed", method)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var failure errorResponse
		if err := json.Unmarshal(raw, &failure); err != nil || failure.Error.Message == "" {
			return errors.Errorf("%s failed with status %d", method, resp.StatusCode)
		}
		p.logger.Debug("Identity request rejected",
			slog.String("method", method),
			slog.String("reason", failure.Error.Message))

		return domainerrors.NewAuthError(failure.Error.Message)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrap(err, "failed to decode response")
		}
	}

	return nil
}
