package dto

import "time"

// Export scope modes.
const (
	ModeAll   = "all"
	ModeYear  = "year"
	ModeRange = "range"
)

// Selection narrows an export to all records, one calendar year, or an
// inclusive date range.
type Selection struct {
	Mode  string
	Year  int
	Start time.Time
	End   time.Time
}

// ImportReport summarizes one import run. Rows without a usable date are
// skipped outright and appear in neither count.
type ImportReport struct {
	Imported int
	Failed   int
}
