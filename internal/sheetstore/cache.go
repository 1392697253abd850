package sheetstore

import (
	"strings"
	"sync"
	"time"
)

// rangeCache keeps fetched ranges for a short TTL so repeated reads of the
// same range do not hit the workbook every time. Invalidation is coarse on
// purpose: any write under a sheet drops every cached key that starts with the
// sheet name, unrelated column slices included. The cache belongs to a Store
// instance; there is no package-level state.
type rangeCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	rows    [][]string
	fetched time.Time
}

func newRangeCache(ttl time.Duration) *rangeCache {
	return &rangeCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *rangeCache) get(key string) ([][]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Since(e.fetched) >= c.ttl {
		return nil, false
	}
	return e.rows, true
}

func (c *rangeCache) set(key string, rows [][]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{rows: rows, fetched: time.Now()}
}

// invalidateSheet drops every cached key belonging to the given sheet name.
func (c *rangeCache) invalidateSheet(sheet string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, sheet) {
			delete(c.entries, key)
		}
	}
}
