package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaceHandler holds dependencies for place detail handlers.
type PlaceHandler struct {
	uc     usecase.PlaceDetailUsecase
	logger *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler, injected by Fx.
func NewPlaceHandler(uc usecase.PlaceDetailUsecase, logger *slog.Logger) *PlaceHandler {
	return &PlaceHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeDetailResponse struct {
	Place      *placeResponse `json:"place"`
	IsFavorite bool           `json:"isFavorite"`
}

// Get returns a single place together with its favorite status for the
// user named in the userId query parameter. Without the parameter the
// status is false and the favorite store is not consulted.
func (h *PlaceHandler) Get(c echo.Context) error {
	placeID := c.Param("id")
	userID := c.QueryParam("userId")

	place, err := h.uc.Load(c.Request().Context(), placeID)
	if err != nil {
		return errors.WithStack(err)
	}

	isFavorite, err := h.uc.IsFavorite(c.Request().Context(), userID, placeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, placeDetailResponse{
		Place:      newPlaceResponse(place),
		IsFavorite: isFavorite,
	}, "Place retrieved")
}
