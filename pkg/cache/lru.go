package cache

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// LRU is a fixed-capacity cache evicting the least recently used entry.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
	loading  map[K]*call[V]
	onEvict  func(key K, value V)
	pinned   func(key K, value V) bool
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback is called for entries dropped by eviction, Remove or
// Clear. It runs with the cache lock held and must not call back into the
// cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// WithPinned marks entries eviction must skip while pinned reports true.
// When every older entry is pinned the cache grows past its capacity and
// shrinks back on later inserts. Remove and Clear ignore pins. pinned runs
// with the cache lock held.
func WithPinned[K comparable, V any](pinned func(key K, value V) bool) Option[K, V] {
	return func(c *LRU[K, V]) { c.pinned = pinned }
}

// NewLRU creates a cache holding up to capacity entries. It panics if
// capacity is not positive.
func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		panic("cache: capacity must be positive")
	}
	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
		loading:  make(map[K]*call[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value for key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

// Put stores value under key.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(key, value)
}

// GetOrLoad returns the cached value for key, calling load to produce it on
// a miss.
func (c *LRU[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	c.mu.Lock()
	if v, ok := c.getLocked(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	if inflight, ok := c.loading[key]; ok {
		c.mu.Unlock()
		<-inflight.done
		return inflight.value, inflight.err
	}
	cl := &call[V]{done: make(chan struct{})}
	c.loading[key] = cl
	c.mu.Unlock()

	cl.value, cl.err = load()

	c.mu.Lock()
	delete(c.loading, key)
	if cl.err == nil {
		c.putLocked(key, cl.value)
	}
	c.mu.Unlock()
	close(cl.done)

	return cl.value, cl.err
}

// Remove drops key and reports whether it was present.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if ok {
		c.removeElement(elem)
	}
	return ok
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Clear drops every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.order.Len() > 0 {
		c.removeElement(c.order.Back())
	}
}

func (c *LRU[K, V]) getLocked(key K) (V, bool) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

func (c *LRU[K, V]) putLocked(key K, value V) {
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		return
	}
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	c.evictLocked()
}

// evictLocked drops unpinned entries from the back until the cache fits.
// The most recent entry is never dropped.
func (c *LRU[K, V]) evictLocked() {
	front := c.order.Front()
	for elem := c.order.Back(); elem != nil && elem != front && c.order.Len() > c.capacity; {
		prev := elem.Prev()
		e := elem.Value.(*entry[K, V])
		if c.pinned == nil || !c.pinned(e.key, e.value) {
			c.removeElement(elem)
		}
		elem = prev
	}
}

func (c *LRU[K, V]) removeElement(elem *list.Element) {
	c.order.Remove(elem)
	e := elem.Value.(*entry[K, V])
	delete(c.items, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
