package token

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "tokens.json"))
}

func TestStore_SaveAndRead(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("access-1", "refresh-1"))

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "access-1", pair.AccessToken)
	assert.Equal(t, "refresh-1", pair.RefreshToken)
}

func TestStore_ReadMissingFile(t *testing.T) {
	store := newTestStore(t)

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, pair.AccessToken)
	assert.Empty(t, pair.RefreshToken)
}

func TestStore_SaveOverwritesBothTokens(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("access-1", "refresh-1"))
	require.NoError(t, store.Save("access-2", "refresh-2"))

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, "access-2", pair.AccessToken)
	assert.Equal(t, "refresh-2", pair.RefreshToken)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("access-1", "refresh-1"))
	require.NoError(t, store.Clear())

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, pair.AccessToken)
}

func TestStore_ClearIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func TestStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.json")
	store := NewStore(path)

	require.NoError(t, store.Save("access-1", "refresh-1"))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewStore(path)

	require.NoError(t, store.Save("access-1", "refresh-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "tokens.json"))

	require.NoError(t, store.Save("access-1", "refresh-1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tokens.json", entries[0].Name())
}
