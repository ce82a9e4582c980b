package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// SessionCache maps auth tokens to user ids in front of the session store.
type SessionCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(maxSizePow2 int, ttl time.Duration) (*SessionCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/50) // ~50 bytes per token entry

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &SessionCache{cache: cache, ttl: ttl}, nil
}

func (c *SessionCache) Get(token string) (int64, bool) {
	val, found := c.cache.Get(token)
	if !found {
		return 0, false
	}
	return val.(int64), true
}

// Set stores the session and waits for it to become visible, so a login is
// followed by a cache hit on the next request.
func (c *SessionCache) Set(token string, userID int64) {
	cost := int64(len(token) + 8)
	if c.cache.SetWithTTL(token, userID, cost, c.ttl) {
		c.cache.Wait()
	}
}

func (c *SessionCache) Delete(token string) {
	c.cache.Del(token)
}

func (c *SessionCache) Close() {
	c.cache.Close()
}

func (c *SessionCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
