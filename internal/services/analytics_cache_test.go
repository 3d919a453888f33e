package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

func TestReportCacheSetGet(t *testing.T) {
	cache := newReportCache(time.Minute)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("k", "v")
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestReportCacheExpiry(t *testing.T) {
	cache := newReportCache(10 * time.Millisecond)
	cache.Set("k", "v")

	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestReportCacheBust(t *testing.T) {
	cache := newReportCache(time.Minute)
	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Bust()

	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("b")
	assert.False(t, ok)
}

func TestReportCacheNilSafe(t *testing.T) {
	var cache *reportCache
	cache.Set("k", "v")
	cache.Bust()
	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestReportCacheKey(t *testing.T) {
	ref := time.Date(2025, time.March, 5, 14, 30, 0, 0, time.UTC)

	key := reportCacheKey("sales", 42, models.PeriodDay, ref)
	assert.Equal(t, "sales:42|day|2025-03-05", key)

	// Two instants on the same calendar day share a key; different cafes,
	// periods or days never collide.
	later := time.Date(2025, time.March, 5, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, key, reportCacheKey("sales", 42, models.PeriodDay, later))
	assert.NotEqual(t, key, reportCacheKey("sales", 43, models.PeriodDay, ref))
	assert.NotEqual(t, key, reportCacheKey("sales", 42, models.PeriodMonth, ref))
	assert.NotEqual(t, key, reportCacheKey("menu-engineering", 42, models.PeriodDay, ref))
}
