package statestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T, path, key string) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), path, key)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_Lifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db", "state.db")
	store := openTestSQLite(t, path, "demo")
	ctx := context.Background()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, []byte(`{"count":1}`)))
	require.NoError(t, store.Save(ctx, []byte(`{"count":2}`)))

	data, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"count":2}`, string(data))

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_KeysAreIsolated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	a := openTestSQLite(t, path, "a")
	b := openTestSQLite(t, path, "b")
	ctx := context.Background()

	require.NoError(t, a.Save(ctx, []byte("A")))

	_, err := b.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, b.Save(ctx, []byte("B")))
	require.NoError(t, a.Clear(ctx))

	data, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", string(data))
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := OpenSQLite(ctx, path, "demo")
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, []byte("persisted")))
	require.NoError(t, first.Close())

	second := openTestSQLite(t, path, "demo")
	data, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(data))
}

func TestIsBusy(t *testing.T) {
	assert.True(t, isBusy(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.True(t, isBusy(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.False(t, isBusy(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.False(t, isBusy(errors.New("plain")))
}
