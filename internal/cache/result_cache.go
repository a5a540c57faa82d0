// Package cache implements the content-addressable translation result cache.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"trans-gate/internal/config"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ResultCache is a size-bounded LRU cache keyed by a digest of the full
// translation call signature. The capacity is re-read from the runtime
// settings on every access; a capacity change rebuilds the cache and drops
// all entries (entries are cheap to recompute). Capacity <= 0 disables
// caching: lookups always miss and stores are no-ops.
type ResultCache struct {
	settings *config.RuntimeSettingsManager

	mu   sync.Mutex
	size int
	lru  *lru.Cache[string, string]
}

// NewResultCache creates a result cache bound to the live runtime settings.
func NewResultCache(settings *config.RuntimeSettingsManager) *ResultCache {
	c := &ResultCache{settings: settings}
	c.size = clampSize(settings.CacheSize())
	c.lru = newLRU(c.size)
	return c
}

// Key derives a collision-resistant cache key from the call arguments. A NUL
// separator after each argument keeps boundaries unambiguous, so ("ab","c")
// and ("a","bc") hash differently.
func Key(args ...string) string {
	digest := sha256.New()
	for _, arg := range args {
		digest.Write([]byte(arg))
		digest.Write([]byte{0})
	}
	return hex.EncodeToString(digest.Sum(nil))
}

// Lookup returns the cached value for the argument tuple, if any.
func (c *ResultCache) Lookup(args ...string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncSize()
	if c.size <= 0 {
		return "", false
	}
	return c.lru.Get(Key(args...))
}

// Store records a value for the argument tuple, evicting the least-recently
// used entry when at capacity.
func (c *ResultCache) Store(value string, args ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncSize()
	if c.size <= 0 {
		return
	}
	c.lru.Add(Key(args...), value)
}

// syncSize re-reads the configured capacity and rebuilds the cache when it
// changed. Must be called with the mutex held.
func (c *ResultCache) syncSize() {
	nextSize := clampSize(c.settings.CacheSize())
	if nextSize == c.size {
		return
	}
	c.size = nextSize
	c.lru = newLRU(nextSize)
}

func clampSize(size int) int {
	if size < 0 {
		return 0
	}
	return size
}

// newLRU always allocates a usable cache; a disabled cache keeps a one-entry
// instance around that Lookup/Store never touch.
func newLRU(size int) *lru.Cache[string, string] {
	if size <= 0 {
		size = 1
	}
	c, _ := lru.New[string, string](size)
	return c
}
