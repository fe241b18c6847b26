package handler

import (
	"io"
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PhotoHandler holds dependencies for profile photo handlers.
type PhotoHandler struct {
	uc     usecase.ProfilePhotoUsecase
	logger *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler, injected by Fx.
func NewPhotoHandler(uc usecase.ProfilePhotoUsecase, logger *slog.Logger) *PhotoHandler {
	return &PhotoHandler{
		uc:     uc,
		logger: logger,
	}
}

// Replace swaps the user's profile photo with the raw image bytes in the
// request body.
func (h *PhotoHandler) Replace(c echo.Context) error {
	image, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read image body")
	}

	photoURL, err := h.uc.Replace(c.Request().Context(), c.Param("userId"), image)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"photoUrl": photoURL}, "Profile photo replaced")
}
