package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wander/internal/domain/entity"
	domainerrors "wander/internal/domain/errors"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessionUsecase records what the handler delivers to the service.
type stubSessionUsecase struct {
	loginInput    *usecase.LoginInput
	registerInput *usecase.RegisterInput
}

func (s *stubSessionUsecase) OnSessionChanged(context.Context, *entity.Identity) {}

func (s *stubSessionUsecase) Register(_ context.Context, input *usecase.RegisterInput) (*entity.UserProfile, error) {
	s.registerInput = input

	return nil, domainerrors.ErrValidationFailed.WrapMessage("registration input is required")
}

func (s *stubSessionUsecase) Login(_ context.Context, input *usecase.LoginInput) (*entity.Identity, error) {
	s.loginInput = input

	return nil, domainerrors.ErrValidationFailed.WrapMessage("login input is required")
}

func (s *stubSessionUsecase) RequestPasswordReset(context.Context, string) error { return nil }
func (s *stubSessionUsecase) Logout(context.Context) error                       { return nil }
func (s *stubSessionUsecase) Current() entity.Session {
	return entity.Session{State: entity.SessionSignedOut}
}
func (s *stubSessionUsecase) Subscribe(func(entity.Session)) {}

func newSessionContext(t *testing.T, target, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestSessionHandler_Login_EmptyBodyReachesServiceAsZeroInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "null body", body: "null"},
		{name: "empty object", body: "{}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			uc := &stubSessionUsecase{}
			h := NewSessionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

			c := newSessionContext(t, "/auth/login", tc.body)

			// The handler must deliver a non-nil input and surface the
			// service's validation failure, never panic.
			err := h.Login(c)
			require.Error(t, err)
			require.NotNil(t, uc.loginInput)
			assert.Empty(t, uc.loginInput.Email)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		})
	}
}

func TestSessionHandler_Register_EmptyBodyReachesServiceAsZeroInput(t *testing.T) {
	t.Parallel()

	uc := &stubSessionUsecase{}
	h := NewSessionHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c := newSessionContext(t, "/auth/register", "null")

	err := h.Register(c)
	require.Error(t, err)
	require.NotNil(t, uc.registerInput)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}
