package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thenitintundwal/table-tap-sub000/internal/models"
)

// ErrInvalidPeriod is returned for an unrecognized report period selector.
// An unknown period is a programming error on the caller's side and must
// fail fast instead of silently defaulting to some granularity.
var ErrInvalidPeriod = errors.New("invalid report period")

// ReportWindow is the resolved time window of a report: [Start, End) in the
// reference instant's location, plus the granularity that produced it.
type ReportWindow struct {
	Period models.ReportPeriod
	Start  time.Time
	End    time.Time
}

// ResolveWindow computes the inclusive-exclusive calendar window containing
// ref for the requested period.
func ResolveWindow(period models.ReportPeriod, ref time.Time) (ReportWindow, error) {
	loc := ref.Location()
	switch period {
	case models.PeriodDay:
		start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, loc)
		return ReportWindow{Period: period, Start: start, End: start.AddDate(0, 0, 1)}, nil
	case models.PeriodMonth:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
		return ReportWindow{Period: period, Start: start, End: start.AddDate(0, 1, 0)}, nil
	case models.PeriodYear:
		start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return ReportWindow{Period: period, Start: start, End: start.AddDate(1, 0, 0)}, nil
	default:
		return ReportWindow{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}
}

// BucketCount returns how many buckets the window spans: 24 hours, the
// number of days in the month, or 12 months.
func (w ReportWindow) BucketCount() int {
	switch w.Period {
	case models.PeriodDay:
		return 24
	case models.PeriodMonth:
		return w.End.AddDate(0, 0, -1).Day() // last day of the month
	case models.PeriodYear:
		return 12
	default:
		return 0
	}
}

// BucketIndex classifies a timestamp into its bucket within the window.
// Timestamps outside [Start, End) return -1.
func (w ReportWindow) BucketIndex(t time.Time) int {
	t = t.In(w.Start.Location())
	if t.Before(w.Start) || !t.Before(w.End) {
		return -1
	}
	switch w.Period {
	case models.PeriodDay:
		return t.Hour()
	case models.PeriodMonth:
		return t.Day() - 1
	case models.PeriodYear:
		return int(t.Month()) - 1
	default:
		return -1
	}
}

// NewBucketSeries pre-populates the ordered series of zero-valued buckets
// covering every unit in the window, so slots with no activity still appear
// in the report.
func NewBucketSeries(w ReportWindow) []models.Bucket {
	count := w.BucketCount()
	buckets := make([]models.Bucket, count)
	for i := 0; i < count; i++ {
		buckets[i] = models.Bucket{
			Label:      bucketLabel(w, i),
			OrderIndex: i,
			Revenue:    decimal.Zero,
		}
	}
	return buckets
}

// bucketLabel renders the human-readable label of one bucket:
// "08:00" for hours, "Mar 5" for days, "Mar" for months.
func bucketLabel(w ReportWindow, index int) string {
	switch w.Period {
	case models.PeriodDay:
		return fmt.Sprintf("%02d:00", index)
	case models.PeriodMonth:
		return w.Start.AddDate(0, 0, index).Format("Jan 2")
	case models.PeriodYear:
		return time.Month(index + 1).String()[:3]
	default:
		return ""
	}
}
