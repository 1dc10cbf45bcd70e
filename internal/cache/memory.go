package cache

import (
	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements in-memory caching of file contents.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache. Entries never expire; the
// cache lives only as long as one validation run.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a value in the cache.
func (c *MemoryCache) Set(key string, value string) {
	c.cache.Set(key, value, gocache.NoExpiration)
}

// Flush removes all values from the cache.
func (c *MemoryCache) Flush() {
	c.cache.Flush()
}
