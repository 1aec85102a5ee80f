package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLookback(t *testing.T) {
	t.Run("valid periods", func(t *testing.T) {
		cases := map[string]time.Duration{
			"30m":  30 * time.Minute,
			"90m":  90 * time.Minute,
			"2h":   2 * time.Hour,
			"1d":   24 * time.Hour,
			"5d":   5 * 24 * time.Hour,
			"1w":   7 * 24 * time.Hour,
			"2w":   14 * 24 * time.Hour,
			"1y":   365 * 24 * time.Hour,
			" 6H ": 6 * time.Hour, // trimmed and case-insensitive
		}

		for input, expected := range cases {
			lookback, err := ParseLookback(input)

			require.NoError(t, err, input)
			assert.Equal(t, expected, lookback.Duration(), input)
		}
	})

	t.Run("missing or unrecognized unit", func(t *testing.T) {
		for _, input := range []string{"90", "90x", "h", ""} {
			_, err := ParseLookback(input)

			assert.ErrorIs(t, err, ParseErr, input)
		}
	})

	t.Run("non-integer magnitude", func(t *testing.T) {
		for _, input := range []string{"1.5h", "abcm", "1h30m"} {
			_, err := ParseLookback(input)

			assert.ErrorIs(t, err, ParseErr, input)
		}
	})
}
