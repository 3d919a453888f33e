package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

func TestResolveWindowDay(t *testing.T) {
	ref := time.Date(2025, time.March, 5, 14, 30, 12, 0, time.UTC)
	window, err := ResolveWindow(models.PeriodDay, ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, time.March, 6, 0, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, 24, window.BucketCount())
}

func TestResolveWindowMonth(t *testing.T) {
	ref := time.Date(2025, time.February, 10, 8, 0, 0, 0, time.UTC)
	window, err := ResolveWindow(models.PeriodMonth, ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, 28, window.BucketCount())

	// Leap year February has 29 buckets.
	leap, err := ResolveWindow(models.PeriodMonth, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 29, leap.BucketCount())
}

func TestResolveWindowYear(t *testing.T) {
	ref := time.Date(2025, time.August, 20, 23, 59, 59, 0, time.UTC)
	window, err := ResolveWindow(models.PeriodYear, ref)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), window.End)
	assert.Equal(t, 12, window.BucketCount())
}

func TestResolveWindowInvalidPeriod(t *testing.T) {
	_, err := ResolveWindow(models.ReportPeriod("week"), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestResolveWindowKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	ref := time.Date(2025, time.June, 15, 1, 0, 0, 0, loc)
	window, err := ResolveWindow(models.PeriodDay, ref)
	require.NoError(t, err)

	assert.Equal(t, loc, window.Start.Location())
	// 01:00 local is still June 15 locally even though it is June 14 in UTC.
	assert.Equal(t, 15, window.Start.Day())
}

func TestBucketIndexDay(t *testing.T) {
	window, err := ResolveWindow(models.PeriodDay, time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0, window.BucketIndex(window.Start))
	assert.Equal(t, 9, window.BucketIndex(time.Date(2025, time.March, 5, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, 23, window.BucketIndex(time.Date(2025, time.March, 5, 23, 59, 59, 0, time.UTC)))

	// [Start, End): the end instant and anything before the start map nowhere.
	assert.Equal(t, -1, window.BucketIndex(window.End))
	assert.Equal(t, -1, window.BucketIndex(window.Start.Add(-time.Nanosecond)))
}

func TestBucketIndexMonthAndYear(t *testing.T) {
	month, err := ResolveWindow(models.PeriodMonth, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, month.BucketIndex(time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, month.BucketIndex(time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)))

	year, err := ResolveWindow(models.PeriodYear, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 0, year.BucketIndex(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 11, year.BucketIndex(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestBucketIndexNormalizesLocation(t *testing.T) {
	window, err := ResolveWindow(models.PeriodDay, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// 03:00 UTC expressed as 08:00 in UTC+5 still lands in the 03:00 bucket.
	shifted := time.Date(2025, time.March, 5, 8, 0, 0, 0, time.FixedZone("UTC+5", 5*60*60))
	assert.Equal(t, 3, window.BucketIndex(shifted))
}

func TestNewBucketSeriesLabels(t *testing.T) {
	day, _ := ResolveWindow(models.PeriodDay, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	dayBuckets := NewBucketSeries(day)
	require.Len(t, dayBuckets, 24)
	assert.Equal(t, "00:00", dayBuckets[0].Label)
	assert.Equal(t, "08:00", dayBuckets[8].Label)
	assert.Equal(t, "23:00", dayBuckets[23].Label)

	month, _ := ResolveWindow(models.PeriodMonth, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	monthBuckets := NewBucketSeries(month)
	require.Len(t, monthBuckets, 31)
	assert.Equal(t, "Mar 1", monthBuckets[0].Label)
	assert.Equal(t, "Mar 5", monthBuckets[4].Label)
	assert.Equal(t, "Mar 31", monthBuckets[30].Label)

	year, _ := ResolveWindow(models.PeriodYear, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	yearBuckets := NewBucketSeries(year)
	require.Len(t, yearBuckets, 12)
	assert.Equal(t, "Jan", yearBuckets[0].Label)
	assert.Equal(t, "Dec", yearBuckets[11].Label)
}

func TestNewBucketSeriesStartsZeroed(t *testing.T) {
	window, _ := ResolveWindow(models.PeriodDay, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	for i, bucket := range NewBucketSeries(window) {
		assert.Equal(t, i, bucket.OrderIndex)
		assert.True(t, bucket.Revenue.IsZero())
		assert.Zero(t, bucket.OrderCount)
	}
}
