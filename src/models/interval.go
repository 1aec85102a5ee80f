package models

import "time"

// Interval is the provider sampling granularity for one request. It is chosen
// once per request and immutable thereafter.
type Interval string

const (
	Interval1Min  Interval = "1min"
	Interval5Min  Interval = "5min"
	Interval15Min Interval = "15min"
	Interval30Min Interval = "30min"
	Interval60Min Interval = "60min"
	IntervalDaily Interval = "daily"
)

func (i Interval) IsIntraday() bool {
	return i != IntervalDaily
}

// FormatTime renders a bar timestamp at the granularity the interval carries:
// date-only for daily bars, full wall clock for intraday bars.
func (i Interval) FormatTime(t time.Time) string {
	if i.IsIntraday() {
		return t.Format(intradayTimeLayout)
	}
	return t.Format(dailyTimeLayout)
}

// ChooseInterval picks the coarsest sampling interval that still fits the
// lookback. The ladder is evaluated in increasing order and the first
// satisfied threshold wins; anything beyond 30 days falls back to daily bars.
func ChooseInterval(lookback Lookback) Interval {
	totalMins := lookback.TotalMinutes()

	switch {
	case totalMins <= 120:
		return Interval1Min
	case totalMins <= 2*24*60:
		return Interval5Min
	case totalMins <= 7*24*60:
		return Interval15Min
	case totalMins <= 14*24*60:
		return Interval30Min
	case totalMins <= 30*24*60:
		return Interval60Min
	default:
		return IntervalDaily
	}
}

// OutputSize selects between the provider's latest-100-points response and
// the full series.
type OutputSize string

const (
	OutputSizeCompact OutputSize = "compact"
	OutputSizeFull    OutputSize = "full"
)

// ChooseOutputSize returns full when the caller forces it or when the
// lookback exceeds 100 days, since a compact response only carries the latest
// 100 data points.
func ChooseOutputSize(lookback Lookback, forceFull bool) OutputSize {
	if forceFull || lookback.Duration() > 100*24*time.Hour {
		return OutputSizeFull
	}

	return OutputSizeCompact
}
