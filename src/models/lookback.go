package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Lookback is the trailing duration of history requested by the user.
type Lookback time.Duration

func (l Lookback) Duration() time.Duration {
	return time.Duration(l)
}

func (l Lookback) TotalMinutes() float64 {
	return time.Duration(l).Minutes()
}

// ParseLookback accepts period strings like: 30m, 90m, 2h, 6h, 1d, 5d, 1w, 2y.
// The magnitude must be a whole number and the unit one of m/h/d/w/y; compound
// periods like "1h30m" are not supported. A year is approximated as 365 days.
func ParseLookback(s string) (Lookback, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("ParseLookback: empty period: %w", ParseErr)
	}

	magnitude, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("ParseLookback: invalid magnitude in %q: %w", s, ParseErr)
	}

	switch s[len(s)-1] {
	case 'm':
		return Lookback(time.Duration(magnitude) * time.Minute), nil
	case 'h':
		return Lookback(time.Duration(magnitude) * time.Hour), nil
	case 'd':
		return Lookback(time.Duration(magnitude) * 24 * time.Hour), nil
	case 'w':
		return Lookback(time.Duration(magnitude) * 7 * 24 * time.Hour), nil
	case 'y':
		return Lookback(time.Duration(magnitude) * 365 * 24 * time.Hour), nil
	default:
		return 0, fmt.Errorf("ParseLookback: unsupported period %q: %w", s, ParseErr)
	}
}
