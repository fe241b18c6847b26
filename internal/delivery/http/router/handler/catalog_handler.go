package handler

import (
	"log/slog"
	"net/http"

	"wander/internal/delivery/http/response"
	"wander/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all places in the requested category.
func (h *CatalogHandler) List(c echo.Context) error {
	category := c.QueryParam("category")

	places, err := h.uc.ListByCategory(c.Request().Context(), category)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newPlaceListResponse(places), "Catalog retrieved")
}
