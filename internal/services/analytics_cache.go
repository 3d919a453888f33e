package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// defaultReportTTL bounds the freshness window of cached reports. The
// aggregation itself is pure and idempotent, so no invalidation beyond the
// TTL is needed.
const defaultReportTTL = 5 * time.Minute

type cacheItem struct {
	value   interface{}
	expires time.Time
}

// reportCache is a small in-process TTL cache keyed by
// (cafe, period, reference date).
type reportCache struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]cacheItem
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{
		ttl:   ttl,
		items: make(map[string]cacheItem),
	}
}

func (c *reportCache) Get(key string) (interface{}, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(item.expires) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.value, true
}

func (c *reportCache) Set(key string, value interface{}) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.items[key] = cacheItem{value: value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Bust drops every cached report.
func (c *reportCache) Bust() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.items = make(map[string]cacheItem)
	c.mu.Unlock()
}

func reportCacheKey(report string, cafeID int64, period models.ReportPeriod, ref time.Time) string {
	return fmt.Sprintf("%s:%d|%s|%s", report, cafeID, period, ref.Format("2006-01-02"))
}
