package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// Metric names a chartable column of the daily_records table. The store
// accepts only these values, which keeps column selection a closed set.
type Metric string

const (
	MetricSleepTime Metric = "sleep_time"
	MetricWeight    Metric = "weight"
	MetricRating    Metric = "rating"
	MetricSteps     Metric = "steps"
	MetricCalories  Metric = "calories_intake"
)

func Metrics() []Metric {
	return []Metric{MetricSleepTime, MetricWeight, MetricRating, MetricSteps, MetricCalories}
}

func (m Metric) Validate() error {
	switch m {
	case MetricSleepTime, MetricWeight, MetricRating, MetricSteps, MetricCalories:
		return nil
	default:
		return fmt.Errorf("unsupported metric %q", string(m))
	}
}

func (m Metric) Label() string {
	switch m {
	case MetricSleepTime:
		return "Sleep time"
	case MetricWeight:
		return "Weight (kg)"
	case MetricRating:
		return "Rating"
	case MetricSteps:
		return "Steps"
	case MetricCalories:
		return "Calories intake"
	}
	return string(m)
}

// Fields holds the six per-day measurements. Nil means "not recorded";
// an upsert writes all six exactly as given, nils included, so a nil here
// clears whatever the row held before.
type Fields struct {
	SleepTime      *string
	Weight         *float64
	Rating         *int
	Steps          *int
	CaloriesIntake *int
	Note           *string
}

func (f Fields) Empty() bool {
	return f.SleepTime == nil && f.Weight == nil && f.Rating == nil &&
		f.Steps == nil && f.CaloriesIntake == nil && f.Note == nil
}

// DailyRecord is one row of daily_records, keyed by calendar date.
type DailyRecord struct {
	ID        int64
	Date      time.Time
	Fields
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// NormalizeDate strips the time-of-day so dates compare and format uniformly.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateRating enforces the 1-10 entry convention at the input edge. The
// table itself does not constrain the column, matching historic data.
func ValidateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 10 {
		return fmt.Errorf("rating must be between 1 and 10, got %d", *rating)
	}
	return nil
}
