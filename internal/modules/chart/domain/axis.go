package domain

import "time"

// Unit is the spacing of major axis ticks.
type Unit string

const (
	UnitDay   Unit = "day"
	UnitMonth Unit = "month"
)

// Tick is one labeled position on the time axis.
type Tick struct {
	Date  time.Time
	Label string
}

// TickPlan tells a rendering surface where to put time-axis ticks and how
// to label them. NoData marks the placeholder state for an empty series.
type TickPlan struct {
	NoData        bool
	MajorUnit     Unit
	MajorInterval int
	LabelFormat   string
	LabelRotation int
	Major         []Tick
	Minor         []time.Time
}

const (
	dailyLabelLayout   = "01-02"
	monthlyLabelLayout = "2006-01"
)

// BuildTickPlan derives tick density from the span of the series. Short
// spans get per-day ticks, thinned to every other day past a month; longer
// spans fall back to month-start majors with unlabeled daily minors.
// Dates must be ascending.
func BuildTickPlan(dates []time.Time) TickPlan {
	if len(dates) == 0 {
		return TickPlan{NoData: true}
	}
	min := dates[0]
	max := dates[len(dates)-1]
	rangeDays := int(max.Sub(min).Hours() / 24)

	if rangeDays <= 60 {
		interval := 1
		if rangeDays > 30 {
			interval = 2
		}
		plan := TickPlan{
			MajorUnit:     UnitDay,
			MajorInterval: interval,
			LabelFormat:   dailyLabelLayout,
			LabelRotation: 45,
		}
		for d := min; !d.After(max); d = d.AddDate(0, 0, interval) {
			plan.Major = append(plan.Major, Tick{Date: d, Label: d.Format(dailyLabelLayout)})
		}
		return plan
	}

	plan := TickPlan{
		MajorUnit:     UnitMonth,
		MajorInterval: 1,
		LabelFormat:   monthlyLabelLayout,
		LabelRotation: 45,
	}
	first := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, min.Location())
	if first.Before(min) {
		first = first.AddDate(0, 1, 0)
	}
	for m := first; !m.After(max); m = m.AddDate(0, 1, 0) {
		plan.Major = append(plan.Major, Tick{Date: m, Label: m.Format(monthlyLabelLayout)})
	}
	for d := min; !d.After(max); d = d.AddDate(0, 0, 1) {
		plan.Minor = append(plan.Minor, d)
	}
	return plan
}
