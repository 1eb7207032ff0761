package web

import (
	"sync"
	"time"

	"histcal/internal/calendar"
)

// evictThreshold is the most entries the cache holds. Reaching it sweeps
// expired entries; if that is not enough the cache is cut to half size.
const evictThreshold = 1024

// durationCache memoises CalculateDuration results by (start, end). The
// computation is pure, so entries only expire to bound memory.
type durationCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[durationKey]durationEntry
}

type durationKey struct {
	start, end string
}

type durationEntry struct {
	value     string
	err       error
	updatedAt time.Time
}

// newDurationCache returns a cache; ttl <= 0 disables caching.
func newDurationCache(ttl time.Duration) *durationCache {
	return &durationCache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[durationKey]durationEntry),
	}
}

func (c *durationCache) get(start, end string) (string, error) {
	if c.ttl <= 0 {
		return calendar.CalculateDuration(start, end)
	}
	key := durationKey{start: start, end: end}
	now := c.now()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && now.Sub(e.updatedAt) < c.ttl {
		return e.value, e.err
	}

	value, err := calendar.CalculateDuration(start, end)

	c.mu.Lock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= evictThreshold {
		c.evictLocked(now)
	}
	c.entries[key] = durationEntry{value: value, err: err, updatedAt: now}
	c.mu.Unlock()
	return value, err
}

// evictLocked drops expired entries and, if the cache is still full,
// arbitrary live ones until it is at most half full, so the next sweep is at
// least evictThreshold/2 inserts away. Callers hold c.mu.
func (c *durationCache) evictLocked(now time.Time) {
	for k, e := range c.entries {
		if now.Sub(e.updatedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < evictThreshold {
		return
	}
	for k := range c.entries {
		if len(c.entries) <= evictThreshold/2 {
			break
		}
		delete(c.entries, k)
	}
}

func (c *durationCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
