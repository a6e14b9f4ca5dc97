package statestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadMissing(t *testing.T) {
	t.Parallel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "absent", "state.json"))

	_, err := fs.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_SaveCreatesDirectories(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "a", "b", "state.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, []byte(`{"count":1}`)))

	data, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"count":1}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestFileStore_SaveOverwritesWithoutLeftovers(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "state.json"))
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, []byte("first, and longer")))
	require.NoError(t, fs.Save(ctx, []byte("second")))

	data, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be renamed or removed")
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "state.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, []byte("x")))
	require.NoError(t, fs.Clear(ctx))
	require.NoError(t, fs.Clear(ctx))

	_, err := fs.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, path, fs.Path())
}

func TestFileStore_Save_ReadOnlyDirectory(t *testing.T) {
	t.Parallel()
	if os.Getuid() == 0 {
		t.Skip("skipping permission test when running as root")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	err := NewFileStore(filepath.Join(dir, "state.json")).Save(context.Background(), []byte("x"))
	assert.Error(t, err)
}
