package dto

import "time"

type PointOutput struct {
	Date  time.Time
	Value float64
}

type TickOutput struct {
	Date  time.Time
	Label string
}

// ChartOutput bundles a metric series with its axis plan, ready for any
// rendering surface.
type ChartOutput struct {
	Metric        string
	Title         string
	NoData        bool
	Points        []PointOutput
	MajorUnit     string
	MajorInterval int
	LabelFormat   string
	LabelRotation int
	MajorTicks    []TickOutput
	MinorTicks    []time.Time
}
