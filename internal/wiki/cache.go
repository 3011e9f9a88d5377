package wiki

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	maxCacheEntries = 100
	entryTTL        = 15 * time.Minute
)

// Cache is the in-memory summary cache. Entries cost one unit each, so
// MaxCost doubles as the entry capacity.
type Cache struct {
	c   *ristretto.Cache[string, Entry]
	ttl time.Duration
}

// NewCache builds a cache holding up to maxCacheEntries summaries.
func NewCache() (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, Entry]{
		NumCounters: maxCacheEntries * 10,
		MaxCost:     maxCacheEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{c: c, ttl: entryTTL}, nil
}

// Get returns the entry cached under key.
func (c *Cache) Get(key string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	return c.c.Get(key)
}

// Set stores an entry under key with the cache TTL.
func (c *Cache) Set(key string, e Entry) {
	if c == nil {
		return
	}
	c.c.SetWithTTL(key, e, 1, c.ttl)
}

// Wait blocks until pending writes are visible to Get.
func (c *Cache) Wait() {
	if c == nil {
		return
	}
	c.c.Wait()
}

// Close releases the cache resources.
func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.c.Close()
}
