// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wander/internal/delivery/http/middleware"
	"wander/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CatalogHandler  *handler.CatalogHandler
	PlaceHandler    *handler.PlaceHandler
	FavoriteHandler *handler.FavoriteHandler
	PhotoHandler    *handler.PhotoHandler

	RequestID *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	catalogHandler  *handler.CatalogHandler
	placeHandler    *handler.PlaceHandler
	favoriteHandler *handler.FavoriteHandler
	photoHandler    *handler.PhotoHandler

	requestID *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		catalogHandler:  params.CatalogHandler,
		placeHandler:    params.PlaceHandler,
		favoriteHandler: params.FavoriteHandler,
		photoHandler:    params.PhotoHandler,
		requestID:       params.RequestID,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.sessionHandler.Register)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.POST("/password-reset", r.sessionHandler.RequestPasswordReset)
	}

	// Session snapshot
	e.GET("/session", r.sessionHandler.GetSession)

	// Catalog routes
	e.GET("/places", r.catalogHandler.List)
	e.GET("/places/:id", r.placeHandler.Get)

	// Per-user routes
	userGroup := e.Group("/users/:userId")
	{
		userGroup.GET("/favorites", r.favoriteHandler.List)
		userGroup.POST("/favorites", r.favoriteHandler.Add)
		userGroup.POST("/favorites/toggle", r.favoriteHandler.Toggle)
		userGroup.DELETE("/favorites/:placeId", r.favoriteHandler.Remove)
		userGroup.PUT("/photo", r.photoHandler.Replace)
	}
}
