package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, ok := store.Token()
	assert.False(t, ok, "fresh store should hold no token")

	require.NoError(t, store.SetToken("abc123"))

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)

	// Overwrite
	require.NoError(t, store.SetToken("def456"))
	token, _ = store.Token()
	assert.Equal(t, "def456", token)

	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok, "cleared store should hold no token")
}

func TestFileStoreClearIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
}

func TestFileStorePermissions(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.SetToken("secret"))

	info, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not json"), 0o600))

	store := NewFileStore(dir)
	_, ok := store.Token()
	assert.False(t, ok, "corrupt session should read as absent")
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	_, ok := store.Token()
	assert.False(t, ok)

	require.NoError(t, store.SetToken("tok"))
	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "tok", token)

	require.NoError(t, store.Clear())
	_, ok = store.Token()
	assert.False(t, ok)
}
