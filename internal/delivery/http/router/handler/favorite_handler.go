package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite management handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all favorite snapshots for the user.
func (h *FavoriteHandler) List(c echo.Context) error {
	entries, err := h.uc.ListForUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newFavoriteListResponse(entries), "Favorites retrieved")
}

// Add stores a favorite snapshot. Re-adding an existing favorite succeeds.
func (h *FavoriteHandler) Add(c echo.Context) error {
	var input placeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	place, err := input.toEntity()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Add(c.Request().Context(), c.Param("userId"), place); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"placeId": place.ID}, "Favorite added")
}

// Remove deletes a favorite entry. Removing an absent entry succeeds.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	if err := h.uc.Remove(c.Request().Context(), c.Param("userId"), c.Param("placeId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"placeId": c.Param("placeId")}, "Favorite removed")
}

type toggleRequest struct {
	Place             *placeRequest `json:"place" validate:"required"`
	CurrentlyFavorite bool          `json:"currentlyFavorite"`
}

type toggleResponse struct {
	PlaceID    string `json:"placeId"`
	IsFavorite bool   `json:"isFavorite"`
}

// Toggle flips the favorite state for a place and reports the new state.
func (h *FavoriteHandler) Toggle(c echo.Context) error {
	var input toggleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	place, err := input.Place.toEntity()
	if err != nil {
		return errors.WithStack(err)
	}

	isFavorite, err := h.uc.Toggle(c.Request().Context(), c.Param("userId"), place, input.CurrentlyFavorite)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toggleResponse{
		PlaceID:    place.ID,
		IsFavorite: isFavorite,
	}, "Favorite toggled")
}
