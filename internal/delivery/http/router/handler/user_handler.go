// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	"passport/internal/delivery/http/validator"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UsersResponse is the body of the listing endpoint.
type UsersResponse struct {
	Message string                `json:"message"`
	Users   []*usecase.UserOutput `json:"users"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, validator.Fields(err))
	}

	if _, err := h.uc.RegisterUser(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	// No token on registration; login is a separate step.
	return response.Message(c, http.StatusCreated, "User created with success")
}

// Login handles the user login request and returns a session token. The
// caller is responsible for storing it.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.ValidationError(c, validator.Fields(err))
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// ListUsers handles the listing request.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	if len(users) == 0 {
		return errors.WithStack(domainerrors.ErrNoUsersRegistered)
	}

	return response.JSON(c, http.StatusOK, UsersResponse{
		Message: "Users registered",
		Users:   users,
	})
}

// Me returns the identity claims of the authenticated caller, as verified by
// the auth middleware.
func (h *UserHandler) Me(c echo.Context) error {
	claims, ok := c.Get(middleware.ContextKeyClaims).(*service.Claims)
	if !ok {
		return response.Unauthorized(c, "Invalid or expired token")
	}

	return response.JSON(c, http.StatusOK, usecase.UserOutput{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
