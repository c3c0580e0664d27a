package view

import (
	"time"
)

// Timeframe is a quick date-range preset for the browse filter.
type Timeframe int

const (
	TimeframeAll       Timeframe = 0
	TimeframeThisMonth Timeframe = 1
	TimeframeLastMonth Timeframe = 2

	timeframeCount = 3
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeAll:
		return "All Time"
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeLastMonth:
		return "Last Month"
	}

	return "Unknown"
}

// Next cycles through the presets.
func (t Timeframe) Next() Timeframe {
	return (t + 1) % timeframeCount
}

// Range returns the inclusive [start, end] bounds for the preset, or
// ok=false for All Time (no constraint).
func (t Timeframe) Range() (time.Time, time.Time, bool) {
	now := time.Now()

	switch t {
	case TimeframeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		return start, end, true
	case TimeframeLastMonth:
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

		return start, end, true
	}

	return time.Time{}, time.Time{}, false
}
