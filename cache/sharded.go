// Package cache provides a thread-safe sharded LRU cache used to memoize
// compiled pipelines.
package cache

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// shardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	shardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 64

	shardMask = shardCount - 1
)

// Key computes the FNV-1a hash of source content, used both for shard
// selection and as the cache key. Compiled pipelines are memoized by
// content, so identical sources always hit the same entry.
func Key(content string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(content)) // fnv.Write never returns an error
	return h.Sum64()
}

// Sharded is a thread-safe, sharded LRU cache keyed by content hash.
//
// Each shard has its own mutex and LRU list, so concurrent compiles of
// different sources rarely contend. Statistics are atomic for
// zero-allocation reads.
type Sharded[V any] struct {
	shards   [shardCount]*shard[V]
	capacity int

	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard[V any] struct {
	mu      sync.Mutex
	entries map[uint64]*list.Element
	lru     *list.List // front = most recently used
}

type entry[V any] struct {
	key   uint64
	value V
}

// NewSharded creates a sharded cache with the given capacity per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[V any](capacity int) *Sharded[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[V]{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard[V]{
			entries: make(map[uint64]*list.Element),
			lru:     list.New(),
		}
	}
	return c
}

func (c *Sharded[V]) shardFor(key uint64) *shard[V] {
	return c.shards[key&shardMask]
}

// Get retrieves a cached value, marking it most recently used.
func (c *Sharded[V]) Get(key uint64) (V, bool) {
	s := c.shardFor(key)

	s.mu.Lock()
	elem, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(elem)
	value := elem.Value.(*entry[V]).value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value, evicting the least recently used entries once the
// shard exceeds capacity. The value is stored as-is, not copied.
func (c *Sharded[V]) Set(key uint64, value V) {
	s := c.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.entries[key]; ok {
		elem.Value.(*entry[V]).value = value
		s.lru.MoveToFront(elem)
		return
	}

	for s.lru.Len() >= c.capacity {
		oldest := s.lru.Back()
		if oldest == nil {
			break
		}
		s.lru.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry[V]).key)
	}

	s.entries[key] = s.lru.PushFront(&entry[V]{key: key, value: value})
}

// Stats returns the cumulative hit and miss counts.
func (c *Sharded[V]) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Len returns the total number of cached entries across all shards.
func (c *Sharded[V]) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += len(s.entries)
		s.mu.Unlock()
	}
	return n
}
