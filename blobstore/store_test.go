package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreLifecycle(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing.bin")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, "reports/euclidean.bin", []byte("first")))
	require.NoError(t, store.Put(ctx, "reports/manhattan.bin", []byte("second")))
	require.NoError(t, store.Put(ctx, "other.bin", []byte("third")))

	data, err := store.Get(ctx, "reports/euclidean.bin")
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// Overwrite
	require.NoError(t, store.Put(ctx, "reports/euclidean.bin", []byte("updated")))
	data, err = store.Get(ctx, "reports/euclidean.bin")
	require.NoError(t, err)
	assert.Equal(t, "updated", string(data))

	names, err := store.List(ctx, "reports/")
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/euclidean.bin", "reports/manhattan.bin"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, names, 3)

	require.NoError(t, store.Delete(ctx, "other.bin"))
	require.NoError(t, store.Delete(ctx, "other.bin"))
	_, err = store.Get(ctx, "other.bin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Lifecycle(t *testing.T) {
	testStoreLifecycle(t, NewMemoryStore())
}

func TestLocalStore_Lifecycle(t *testing.T) {
	testStoreLifecycle(t, NewLocalStore(t.TempDir()))
}

func TestMemoryStore_CopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "a", data))
	data[0] = 'x'

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[1] = 'y'
	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLocalStore_RejectsNamesOutsideRoot(t *testing.T) {
	ctx := context.Background()
	parent := t.TempDir()
	root := filepath.Join(parent, "reports")
	store := NewLocalStore(root)

	require.NoError(t, os.WriteFile(filepath.Join(parent, "secret.report"), []byte("keep"), 0o600))

	for _, name := range []string{"../secret.report", "a/../../secret.report", "/etc/passwd", ""} {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidName)
			assert.ErrorIs(t, store.Put(ctx, name, []byte("x")), ErrInvalidName)
			assert.ErrorIs(t, store.Delete(ctx, name), ErrInvalidName)
		})
	}

	data, err := os.ReadFile(filepath.Join(parent, "secret.report"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))

	// Dot segments that stay below root are fine.
	require.NoError(t, store.Put(ctx, "a/../cluster.report", []byte("ok")))
	data, err = store.Get(ctx, "cluster.report")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))
}

func TestLocalStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	require.NoError(t, store.Put(context.Background(), "a.bin", []byte("data")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.bin", entries[0].Name())
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, store := range []Store{NewMemoryStore(), NewLocalStore(t.TempDir())} {
		assert.ErrorIs(t, store.Put(ctx, "a", nil), context.Canceled)
		_, err := store.Get(ctx, "a")
		assert.ErrorIs(t, err, context.Canceled)
	}
}
