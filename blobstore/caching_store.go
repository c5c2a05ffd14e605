package blobstore

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// CachingStore wraps a Store and keeps recently read blobs in memory.
// Concurrent misses for the same name share a single inner Get.
type CachingStore struct {
	inner Store
	group singleflight.Group

	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[string]*list.Element
	evictList *list.List
	// gens counts writes per name; a fetch started under an older
	// generation is not cached.
	gens map[string]uint64

	hits   atomic.Int64
	misses atomic.Int64
}

type entry struct {
	name  string
	value []byte
}

// NewCachingStore creates a new CachingStore holding at most capacity bytes.
func NewCachingStore(inner Store, capacity int64) *CachingStore {
	return &CachingStore{
		inner:     inner,
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
		gens:      make(map[string]uint64),
	}
}

func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	defer s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if b, ok := s.lookup(name); ok {
		return clone(b), nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		gen := s.generation(name)
		b, err := s.inner.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		s.set(name, b, gen)
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(v.([]byte)), nil
}

func (s *CachingStore) Delete(ctx context.Context, name string) error {
	defer s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns cache hits and misses.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}

// Size returns the current size of the cache in bytes.
func (s *CachingStore) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

func (s *CachingStore) lookup(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[name]; ok {
		s.hits.Add(1)
		s.evictList.MoveToFront(ent)
		return ent.Value.(*entry).value, true
	}
	s.misses.Add(1)
	return nil, false
}

func (s *CachingStore) generation(name string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[name]
}

func (s *CachingStore) set(name string, b []byte, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Written since the fetch started
	if s.gens[name] != gen {
		return
	}

	itemSize := int64(len(b))
	// Larger than the whole cache: don't cache
	if itemSize > s.capacity {
		return
	}

	if ent, ok := s.items[name]; ok {
		s.removeElement(ent)
	}

	for s.size+itemSize > s.capacity {
		ent := s.evictList.Back()
		if ent == nil {
			break
		}
		s.removeElement(ent)
	}

	element := s.evictList.PushFront(&entry{name: name, value: b})
	s.items[name] = element
	s.size += itemSize
}

// invalidate runs after the inner write so that fetches which read the
// previous contents are neither cached nor shared with later callers.
func (s *CachingStore) invalidate(name string) {
	s.group.Forget(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gens[name]++
	if ent, ok := s.items[name]; ok {
		s.removeElement(ent)
	}
}

func (s *CachingStore) removeElement(e *list.Element) {
	s.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(s.items, kv.name)
	s.size -= int64(len(kv.value))
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var _ Store = (*CachingStore)(nil)
