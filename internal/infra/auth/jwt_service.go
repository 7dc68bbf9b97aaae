// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret    string        // Secret key for signing session tokens.
	accessTTL time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// A missing signing secret is a startup failure: the process must not come up
// able to mint unsigned sessions.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session signing secret must be provided")
	}

	return &jwtService{
		secret:    cfg.SecretKey.Session,
		accessTTL: cfg.AccessTokenTTL(),
	}, nil
}

// Issue mints a signed token carrying the user's identity claims and an
// expiry derived from the configured TTL. The password hash and salt are
// structurally absent from the claims type.
func (s *jwtService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded
// claims unchanged. Malformed, tampered and expired tokens all surface as
// ErrInvalidToken.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("session token is not valid")
	}

	return claims, nil
}

// AccessTokenDuration returns the configured duration for session tokens.
func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}
