// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		// Listing stays unguarded to preserve the public API contract.
		usersGroup.GET("/", r.userHandler.ListUsers)
		usersGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}
}
