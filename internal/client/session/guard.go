package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"passport/internal/domain/service"
)

// Session is the authenticated state derived from a stored token.
type Session struct {
	Token     string
	UserID    string
	Name      string
	Email     string
	ExpiresAt time.Time
}

// Guard derives authenticated state from the stored token. It decodes the
// claims without signature verification, the same trust the browser client
// places in its own cookie; the server re-verifies on every protected call.
type Guard struct {
	store *Store
}

// NewGuard creates a guard over the given token store.
func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Current returns the active session. A missing, undecodable or expired
// token means not authenticated (ErrNoSession).
func (g *Guard) Current() (*Session, error) {
	token, err := g.store.Load()
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrNoSession
	}

	// A token past its expiry would be rejected server-side anyway; treat it
	// as logged out instead of presenting a dead session.
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrNoSession
	}

	sess := &Session{
		Token: token,
		Name:  claims.Name,
		Email: claims.Email,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	sess.UserID = claims.UserID.String()

	return sess, nil
}

// Login stores the token for subsequent calls.
func (g *Guard) Login(token string) error {
	if token == "" {
		return errors.New("cannot store an empty token")
	}

	return g.store.Save(token)
}

// Logout deletes the stored token and with it the authenticated state.
func (g *Guard) Logout() error {
	return g.store.Clear()
}
