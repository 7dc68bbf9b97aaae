package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// Claims is the set of non-secret identity fields embedded in a session
// token. Password hash and salt must never appear here.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// Verification is stateless: a valid signature is trusted without a store
// round trip, and there is no revocation list.
type TokenService interface {
	// Issue mints a signed, time-boxed token carrying the user's identity
	// claims.
	Issue(user *entity.User) (string, error)

	// Verify checks the token's signature and expiry and returns the claims
	// it carries.
	Verify(token string) (*Claims, error)

	// AccessTokenDuration returns the validity window of issued tokens.
	AccessTokenDuration() time.Duration
}
