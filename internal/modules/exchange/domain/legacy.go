package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ConvertSleepOffset converts a signed fractional-hour offset relative to
// midnight into a wall-clock HH:MM string: -0.5 falls before midnight
// (23:30), 0.5 after it (00:30). Blank or malformed input yields "".
//
// This exists for one-time migration of legacy sleep exports that stored
// bedtime as an offset instead of a clock time.
func ConvertSleepOffset(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	offset, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ""
	}

	totalMinutes := int(math.Round(math.Abs(offset) * 60))
	var hours, minutes int
	if offset < 0 {
		actualMinutes := 24*60 - totalMinutes
		hours = actualMinutes / 60
		minutes = actualMinutes % 60
	} else {
		hours = totalMinutes / 60
		minutes = totalMinutes % 60
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
