package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	return NewStore(filepath.Join(t.TempDir(), "passport", "token"))
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("header.payload.signature"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", token)
}

func TestStore_LoadWithoutToken(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_TokenFileIsOwnerOnly(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("header.payload.signature"))

	info, err := os.Stat(store.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("header.payload.signature"))

	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing again is not an error.
	assert.NoError(t, store.Clear())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("first.token.value"))
	require.NoError(t, store.Save("second.token.value"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second.token.value", token)
}
