package blobstore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	Store
	gets atomic.Int64
}

func (c *countingStore) Get(ctx context.Context, name string) ([]byte, error) {
	c.gets.Add(1)
	return c.Store.Get(ctx, name)
}

func TestCachingStore_HitsAndInvalidation(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewMemoryStore()}
	store := NewCachingStore(inner, 1024)

	require.NoError(t, store.Put(ctx, "a", []byte("one")))

	for range 3 {
		data, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "one", string(data))
	}
	assert.Equal(t, int64(1), inner.gets.Load())

	hits, misses := store.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)

	// Put invalidates
	require.NoError(t, store.Put(ctx, "a", []byte("two")))
	data, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
	assert.Equal(t, int64(2), inner.gets.Load())

	// Delete invalidates
	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(0), store.Size())
}

func TestCachingStore_Eviction(t *testing.T) {
	ctx := context.Background()
	store := NewCachingStore(NewMemoryStore(), 8)

	require.NoError(t, store.Put(ctx, "a", []byte("aaaa")))
	require.NoError(t, store.Put(ctx, "b", []byte("bbbb")))
	require.NoError(t, store.Put(ctx, "c", []byte("cccc")))
	require.NoError(t, store.Put(ctx, "big", []byte("too large to cache")))

	for _, name := range []string{"a", "b", "c", "big"} {
		_, err := store.Get(ctx, name)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(8), store.Size())

	// "a" was evicted by "c"; "b" and "c" remain
	_, misses := store.Stats()
	_, err := store.Get(ctx, "c")
	require.NoError(t, err)
	_, missesAfter := store.Stats()
	assert.Equal(t, misses, missesAfter)
}

func TestCachingStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewCachingStore(NewMemoryStore(), 1024)
	require.NoError(t, store.Put(ctx, "a", []byte("abc")))

	first, err := store.Get(ctx, "a")
	require.NoError(t, err)
	first[0] = 'x'

	second, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(second))
}

func TestCachingStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewCachingStore(NewMemoryStore(), 1024)
	require.NoError(t, store.Put(ctx, "a", []byte("shared")))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := store.Get(ctx, "a")
			assert.NoError(t, err)
			assert.Equal(t, "shared", string(data))
		}()
	}
	wg.Wait()
}

// pausingStore blocks the first Get after it has read from the inner store.
type pausingStore struct {
	Store
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (p *pausingStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := p.Store.Get(ctx, name)
	p.once.Do(func() {
		close(p.read)
		<-p.release
	})
	return data, err
}

func TestCachingStore_PutDuringGetDoesNotCacheStaleData(t *testing.T) {
	ctx := context.Background()
	inner := &pausingStore{
		Store:   NewMemoryStore(),
		read:    make(chan struct{}),
		release: make(chan struct{}),
	}
	require.NoError(t, inner.Store.Put(ctx, "r", []byte("old")))
	store := NewCachingStore(inner, 1024)

	done := make(chan []byte)
	go func() {
		data, err := store.Get(ctx, "r")
		assert.NoError(t, err)
		done <- data
	}()

	<-inner.read
	require.NoError(t, store.Put(ctx, "r", []byte("new")))
	close(inner.release)
	assert.Equal(t, "old", string(<-done))

	data, err := store.Get(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCachingStore_DeleteDuringGetDoesNotCacheStaleData(t *testing.T) {
	ctx := context.Background()
	inner := &pausingStore{
		Store:   NewMemoryStore(),
		read:    make(chan struct{}),
		release: make(chan struct{}),
	}
	require.NoError(t, inner.Store.Put(ctx, "r", []byte("old")))
	store := NewCachingStore(inner, 1024)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := store.Get(ctx, "r")
		assert.NoError(t, err)
	}()

	<-inner.read
	require.NoError(t, store.Delete(ctx, "r"))
	close(inner.release)
	<-done

	_, err := store.Get(ctx, "r")
	assert.ErrorIs(t, err, ErrNotFound)
}
