package dto

import "time"

// FieldsInput carries the six optional measurements exactly as the caller
// resolved them; nil survives all the way to the row.
type FieldsInput struct {
	SleepTime      *string
	Weight         *float64
	Rating         *int
	Steps          *int
	CaloriesIntake *int
	Note           *string
}

type UpsertInput struct {
	Date   time.Time
	Fields FieldsInput
}

type UpdateInput struct {
	ID     int64
	Fields FieldsInput
}

type ListInput struct {
	Descending bool
}

type RangeInput struct {
	Start time.Time
	End   time.Time
}

type YearMonthInput struct {
	Year  int
	Month int // 0 means the whole year
}

type RecordOutput struct {
	ID             int64
	Date           time.Time
	SleepTime      *string
	Weight         *float64
	Rating         *int
	Steps          *int
	CaloriesIntake *int
	Note           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type SeriesPointOutput struct {
	Date  time.Time
	Value float64
}
