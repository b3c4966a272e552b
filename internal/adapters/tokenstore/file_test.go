package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpost/inkpost-go/internal/ports"
)

func newTestFileStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inkpost", "token")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store, path
}

func TestNewFileStoreRequiresPath(t *testing.T) {
	_, err := NewFileStore("  ")
	require.Error(t, err)
}

func TestFileStoreSaveLoadClear(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "token-abc"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)

	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store, _ := newTestFileStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestFileStoreLoadEmptyFile(t *testing.T) {
	store, path := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoToken)
}

func TestFileStoreLoadTrimsWhitespace(t *testing.T) {
	store, path := newTestFileStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("token-xyz\n"), 0o600))

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-xyz", token)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "first"))
	require.NoError(t, store.Save(ctx, "second"))

	token, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestFileStoreSaveRejectsEmptyToken(t *testing.T) {
	store, _ := newTestFileStore(t)
	require.Error(t, store.Save(context.Background(), ""))
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Save(ctx, "token"))
	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}

func TestFileStoreTokenFileIsPrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix file modes not meaningful on windows")
	}

	store, path := newTestFileStore(t)
	require.NoError(t, store.Save(context.Background(), "token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStoreHonorsCanceledContext(t *testing.T) {
	store, _ := newTestFileStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, store.Save(ctx, "token"))
	_, err := store.Load(ctx)
	assert.Error(t, err)
	assert.Error(t, store.Clear(ctx))
}
