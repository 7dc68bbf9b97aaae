package middleware

import (
	"strings"

	"passport/internal/delivery/http/response"
	"passport/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyClaims is where Authenticate stores the verified token claims.
const ContextKeyClaims = "claims"

// AuthMiddleware provides middleware for bearer-token authentication.
// Client-side token decoding is a UI hint only; this is the security
// boundary.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request and stores the
// verified claims on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(ContextKeyClaims, claims)

		return next(c)
	}
}
