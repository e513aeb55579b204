package lru

import (
	"container/list"

	"github.com/cespare/xxhash/v2"

	"zview/strview"
)

// HashFunc hashes the units of a key. Equal unit sequences must hash
// equally whatever buffer backs them.
type HashFunc[T strview.Char] func(key strview.View[T]) uint64

// MurmurHash is the default HashFunc; it matches strview.View.Hash.
func MurmurHash[T strview.Char](key strview.View[T]) uint64 {
	return key.Hash()
}

// XXHash hashes the raw unit bytes with xxHash64.
func XXHash[T strview.Char](key strview.View[T]) uint64 {
	return xxhash.Sum64(key.Bytes())
}

// Cache is an LRU cache keyed by character views. A terminated view and a
// plain view over the same units address the same entry. It is not safe
// for concurrent access.
type Cache[T strview.Char, V any] struct {
	// maxEntries is the maxinum number of cache entries before
	// an item is evicted. Zero means no limit.
	maxEntries int

	hash  HashFunc[T]
	list  *list.List
	cache map[uint64][]*list.Element

	// onEvicted optionally specifies a callback function to be
	// executed when an entry is purged from the cache.
	onEvicted func(key strview.View[T], value V)
}

// entry represents the entity stored in the Cache
type entry[T strview.Char, V any] struct {
	key   strview.View[T]
	sum   uint64
	value V
}

// New creates a new Cache hashed with MurmurHash.
// If maxEntries is zero, the cache has no limit and it's assumed
// that eviction is done by the caller.
func New[T strview.Char, V any](maxEntries int, onEvicted func(strview.View[T], V)) *Cache[T, V] {
	return NewWithHash(maxEntries, MurmurHash[T], onEvicted)
}

// NewWithHash is like New with a custom hash function.
func NewWithHash[T strview.Char, V any](maxEntries int, hash HashFunc[T], onEvicted func(strview.View[T], V)) *Cache[T, V] {
	return &Cache[T, V]{
		maxEntries: maxEntries,
		hash:       hash,
		list:       list.New(),
		cache:      make(map[uint64][]*list.Element),
		onEvicted:  onEvicted,
	}
}

func (c *Cache[T, V]) sum(key strview.View[T]) uint64 {
	if c.hash == nil {
		return MurmurHash(key)
	}
	return c.hash(key)
}

func (c *Cache[T, V]) lookup(key strview.View[T]) (*list.Element, uint64) {
	sum := c.sum(key)
	for _, element := range c.cache[sum] {
		if element.Value.(*entry[T, V]).key.Equal(key) {
			return element, sum
		}
	}
	return nil, sum
}

// Add adds a value to the cache. The cache keeps key as given, so a key
// over a buffer that may change should be cloned first.
func (c *Cache[T, V]) Add(key strview.View[T], value V) {
	if c.cache == nil {
		c.cache = make(map[uint64][]*list.Element)
		c.list = list.New()
	}

	if element, sum := c.lookup(key); element != nil {
		c.list.MoveToBack(element)
		kv := element.Value.(*entry[T, V])
		kv.value = value
	} else {
		element := c.list.PushBack(&entry[T, V]{key: key, sum: sum, value: value})
		c.cache[sum] = append(c.cache[sum], element)
	}
	if c.maxEntries != 0 && c.Len() > c.maxEntries {
		c.RemoveOldest()
	}
}

// Get looks up a key's value from the cache.
func (c *Cache[T, V]) Get(key strview.View[T]) (value V, ok bool) {
	if c.cache == nil {
		return
	}

	if element, _ := c.lookup(key); element != nil {
		c.list.MoveToBack(element)
		kv := element.Value.(*entry[T, V])
		return kv.value, true
	}
	return
}

// Remove removes the provided key from the cache.
func (c *Cache[T, V]) Remove(key strview.View[T]) {
	if c.cache == nil {
		return
	}

	if element, _ := c.lookup(key); element != nil {
		c.removeElement(element)
	}
}

// RemoveOldest removes the oldest item from the cache
func (c *Cache[T, V]) RemoveOldest() {
	if c.cache == nil {
		return
	}

	element := c.list.Front()
	if element != nil {
		c.removeElement(element)
	}
}

func (c *Cache[T, V]) removeElement(element *list.Element) {
	c.list.Remove(element)
	kv := element.Value.(*entry[T, V])
	bucket := c.cache[kv.sum]
	for i, e := range bucket {
		if e == element {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.cache, kv.sum)
	} else {
		c.cache[kv.sum] = bucket
	}
	if c.onEvicted != nil {
		c.onEvicted(kv.key, kv.value)
	}
}

// Len the number of cache entries
func (c *Cache[T, V]) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.list.Len()
}

// Clear purges all stored items from the cache.
func (c *Cache[T, V]) Clear() {
	if c.onEvicted != nil && c.list != nil {
		for e := c.list.Front(); e != nil; e = e.Next() {
			kv := e.Value.(*entry[T, V])
			c.onEvicted(kv.key, kv.value)
		}
	}
	c.list = nil
	c.cache = nil
}
