package identity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wander/config"
	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, handler http.Handler) service.IdentityProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Firebase = &config.FirebaseConfig{
		APIKey:       "test-key",
		AuthEndpoint: server.URL,
	}

	provider, err := NewProvider(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return provider
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestProvider_SignIn_Success(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ana@example.com", payload["email"])
		assert.Equal(t, true, payload["returnSecureToken"])

		writeJSON(t, w, http.StatusOK, map[string]string{
			"localId":      "uid-1",
			"email":        "ana@example.com",
			"idToken":      "opaque-token",
			"refreshToken": "refresh-token",
			"expiresIn":    "3600",
		})
	}))

	identity, err := provider.SignIn(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.Equal(t, "opaque-token", identity.IDToken)
	assert.Equal(t, "refresh-token", identity.RefreshToken)
	// The token is not a parseable JWT, so expiry comes from expiresIn.
	assert.WithinDuration(t, time.Now().Add(time.Hour), identity.ExpiresAt, time.Minute)
}

func TestProvider_SignIn_ProviderReasonSurvivesVerbatim(t *testing.T) {
	t.Parallel()

	testCases := []string{"EMAIL_NOT_FOUND", "INVALID_PASSWORD", "TOO_MANY_ATTEMPTS_TRY_LATER"}

	for _, reason := range testCases {
		t.Run(reason, func(t *testing.T) {
			t.Parallel()

			provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(t, w, http.StatusBadRequest, map[string]any{
					"error": map[string]any{"message": reason},
				})
			}))

			_, err := provider.SignIn(context.Background(), "ana@example.com", "wrong")
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, reason, appErr.Message())
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
		})
	}
}

func TestProvider_SignUp_EmitsSessionChange(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signUp", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]string{
			"localId":   "uid-2",
			"email":     "ana@example.com",
			"idToken":   "tok",
			"expiresIn": "3600",
		})
	}))

	var observed []*entity.Identity
	provider.OnChange(func(identity *entity.Identity) {
		observed = append(observed, identity)
	})

	_, err := provider.SignUp(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)

	require.Len(t, observed, 1)
	assert.Equal(t, "uid-2", observed[0].UID)
}

func TestProvider_SignOut_EmitsNilInOrder(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]string{
			"localId":   "uid-3",
			"email":     "ana@example.com",
			"idToken":   "tok",
			"expiresIn": "3600",
		})
	}))

	var observed []*entity.Identity
	provider.OnChange(func(identity *entity.Identity) {
		observed = append(observed, identity)
	})

	_, err := provider.SignIn(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, provider.SignOut(context.Background()))

	require.Len(t, observed, 2)
	assert.NotNil(t, observed[0])
	assert.Nil(t, observed[1])
}

func TestProvider_SendPasswordReset(t *testing.T) {
	t.Parallel()

	t.Run("sends the reset request type", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts:sendOobCode", r.URL.Path)

			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "PASSWORD_RESET", payload["requestType"])
			assert.Equal(t, "ana@example.com", payload["email"])

			writeJSON(t, w, http.StatusOK, map[string]string{"email": "ana@example.com"})
		}))

		require.NoError(t, provider.SendPasswordReset(context.Background(), "ana@example.com"))
	})

	t.Run("does not reveal unregistered addresses", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]any{
				"error": map[string]any{"message": "EMAIL_NOT_FOUND"},
			})
		}))

		require.NoError(t, provider.SendPasswordReset(context.Background(), "ghost@example.com"))
	})

	t.Run("other rejections are surfaced", func(t *testing.T) {
		t.Parallel()

		provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, map[string]any{
				"error": map[string]any{"message": "INVALID_EMAIL"},
			})
		}))

		err := provider.SendPasswordReset(context.Background(), "not-an-email")
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "INVALID_EMAIL", appErr.Message())
	})
}

func TestProvider_MalformedFailureBody(t *testing.T) {
	t.Parallel()

	provider := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("upstream exploded"))
	}))

	_, err := provider.SignIn(context.Background(), "ana@example.com", "secret1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}
