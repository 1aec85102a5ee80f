package models

import (
	"fmt"
	"time"
)

const (
	dailyTimeLayout    = "2006-01-02"
	intradayTimeLayout = "2006-01-02 15:04:05"
)

// ParseProviderTime normalizes a provider timestamp string into the naive
// representation the rest of the pipeline compares against.
//
// Daily bars carry date-only granularity. Intraday bars usually arrive as bare
// wall-clock values in the exchange's local time; those are kept literal, with
// no timezone conversion applied. Intraday values that do carry an explicit
// offset are converted to UTC and the offset is dropped. The asymmetry between
// the two cases matches the provider's historical behavior and is kept on
// purpose: converting naive values would change which bars fall inside the
// window relative to NaiveNow.
func ParseProviderTime(value string, interval Interval) (time.Time, error) {
	if !interval.IsIntraday() {
		t, err := time.Parse(dailyTimeLayout, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("ParseProviderTime: invalid daily timestamp %q: %w", value, err)
		}

		return t, nil
	}

	if t, err := time.Parse(intradayTimeLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("ParseProviderTime: invalid intraday timestamp %q: %w", value, err)
	}

	return stripOffset(t.UTC()), nil
}

// NaiveNow returns the local wall clock re-labeled as a naive value, so that
// cutoff arithmetic uses the same representation ParseProviderTime emits.
func NaiveNow() time.Time {
	return stripOffset(time.Now())
}

func stripOffset(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
