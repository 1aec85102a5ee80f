package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// Candle is one OHLCV bar. Candles are request-scoped values: created once by
// the fetcher, never mutated, discarded when the request completes.
type Candle struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

// Candles is one symbol's bar series, sorted ascending by timestamp and
// unique per timestamp.
type Candles []Candle

// SortedUnique removes duplicate timestamps and returns a new series sorted
// ascending. The input is left untouched.
func SortedUnique(candles Candles) Candles {
	byTimestamp := map[time.Time]Candle{}
	for _, candle := range candles {
		byTimestamp[candle.Timestamp] = candle
	}

	out := make(Candles, 0, len(byTimestamp))
	for _, candle := range byTimestamp {
		out = append(out, candle)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})

	return out
}

// Window returns the contiguous trailing subsequence of bars with timestamp
// >= cutoff. The series is assumed sorted ascending; it is never re-sorted or
// mutated. An empty result is a valid outcome, distinct from a fetch failure.
func (c Candles) Window(cutoff time.Time) Candles {
	i := sort.Search(len(c), func(i int) bool {
		return !c[i].Timestamp.Before(cutoff)
	})

	return c[i:]
}

// Tail returns the last n bars, or the whole series when it is shorter.
func (c Candles) Tail(n int) Candles {
	if len(c) <= n {
		return c
	}

	return c[len(c)-n:]
}

func (c Candles) Closes() []float64 {
	closes := make([]float64, 0, len(c))
	for _, candle := range c {
		closes = append(closes, candle.Close)
	}

	return closes
}

// Summary describes the bars inside one request window.
type Summary struct {
	Rows      int
	From      time.Time
	To        time.Time
	MeanClose float64
	MinClose  float64
	MaxClose  float64
}

func (c Candles) Summarize() (Summary, error) {
	if len(c) == 0 {
		return Summary{}, fmt.Errorf("Candles.Summarize: empty series")
	}

	closes := c.Closes()

	mean, err := stats.Mean(closes)
	if err != nil {
		return Summary{}, fmt.Errorf("Candles.Summarize: failed to compute mean close: %w", err)
	}

	min, err := stats.Min(closes)
	if err != nil {
		return Summary{}, fmt.Errorf("Candles.Summarize: failed to compute min close: %w", err)
	}

	max, err := stats.Max(closes)
	if err != nil {
		return Summary{}, fmt.Errorf("Candles.Summarize: failed to compute max close: %w", err)
	}

	return Summary{
		Rows:      len(c),
		From:      c[0].Timestamp,
		To:        c[len(c)-1].Timestamp,
		MeanClose: mean,
		MinClose:  min,
		MaxClose:  max,
	}, nil
}
