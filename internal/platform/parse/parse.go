// Package parse holds the permissive field parsers shared by the CSV
// importer, the CLI flags, and the TUI entry form. Blank and whitespace-only
// input is "not recorded" (nil), malformed input is nil plus ok=false; a
// malformed optional field never aborts the surrounding row or form.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
)

// OptionalFloat parses a decimal field. ok is false only for non-blank,
// non-numeric input.
func OptionalFloat(text string) (value *float64, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

// OptionalInt parses an integer field, accepting decimal notation the way
// spreadsheet exports produce it ("8000.0" -> 8000).
func OptionalInt(text string) (value *int, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	n := int(f)
	return &n, true
}

// SleepTime parses a time-of-day as HH:MM:SS, falling back to HH:MM, and
// returns the normalized HH:MM:SS form. Blank input is nil; malformed input
// is nil with ok=false.
func SleepTime(text string) (value *string, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, true
	}
	t, err := time.Parse("15:04:05", text)
	if err != nil {
		t, err = time.Parse("15:04", text)
		if err != nil {
			return nil, false
		}
	}
	s := t.Format("15:04:05")
	return &s, true
}

// SleepHours converts a normalized HH:MM:SS value to fractional hours since
// midnight, for plotting.
func SleepHours(value string) (float64, error) {
	t, err := time.Parse("15:04:05", value)
	if err != nil {
		return 0, fmt.Errorf("parse sleep time %q: %w", value, err)
	}
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600, nil
}

// Date parses a calendar date in YYYY-MM-DD, normalized to midnight UTC.
func Date(text string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", strings.TrimSpace(text), err)
	}
	return d.UTC(), nil
}

// OptionalText trims a free-text field, mapping blank to nil.
func OptionalText(text string) *string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return &text
}
