// Package session keeps the client-side session: a stored token plus the
// authenticated state derived from it.
package session

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoSession is returned when no token is stored.
var ErrNoSession = errors.New("no stored session")

// Store persists the session token in a file under the user's config
// directory, the terminal equivalent of a scoped cookie.
type Store struct {
	path string
}

// NewStore creates a token store at the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore places the token under the OS user config directory.
func DefaultStore() (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve user config dir")
	}

	return NewStore(filepath.Join(configDir, "passport", "token")), nil
}

// Save writes the token, readable by the owner only.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create session dir")
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return errors.Wrap(err, "failed to write session token")
	}

	return nil
}

// Load reads the stored token, if any.
func (s *Store) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSession
		}

		return "", errors.Wrap(err, "failed to read session token")
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNoSession
	}

	return token, nil
}

// Clear deletes the stored token. Logging out twice is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete session token")
	}

	return nil
}
