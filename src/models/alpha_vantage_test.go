package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaVantageBarDTOToCandle(t *testing.T) {
	t.Run("parses all fields", func(t *testing.T) {
		dto := AlphaVantageBarDTO{
			Open:   "255.4600",
			High:   "255.6000",
			Low:    "255.3200",
			Close:  "255.4550",
			Volume: "61870",
		}

		candle, err := dto.ToCandle("2025-10-07 15:59:00", Interval1Min)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 10, 7, 15, 59, 0, 0, time.UTC), candle.Timestamp)
		assert.Equal(t, 255.46, candle.Open)
		assert.Equal(t, 255.60, candle.High)
		assert.Equal(t, 255.32, candle.Low)
		assert.Equal(t, 255.455, candle.Close)
		assert.Equal(t, int64(61870), candle.Volume)
	})

	t.Run("fractional volume truncates", func(t *testing.T) {
		dto := AlphaVantageBarDTO{
			Open:   "1",
			High:   "1",
			Low:    "1",
			Close:  "1",
			Volume: "1234.0",
		}

		candle, err := dto.ToCandle("2025-10-07", IntervalDaily)
		require.NoError(t, err)

		assert.Equal(t, int64(1234), candle.Volume)
	})

	t.Run("unparseable price is a malformed bar", func(t *testing.T) {
		dto := AlphaVantageBarDTO{
			Open:   "not-a-number",
			High:   "1",
			Low:    "1",
			Close:  "1",
			Volume: "1",
		}

		_, err := dto.ToCandle("2025-10-07", IntervalDaily)

		assert.ErrorIs(t, err, MalformedBarErr)
	})

	t.Run("unparseable timestamp is a malformed bar", func(t *testing.T) {
		dto := AlphaVantageBarDTO{
			Open:   "1",
			High:   "1",
			Low:    "1",
			Close:  "1",
			Volume: "1",
		}

		_, err := dto.ToCandle("bad-stamp", IntervalDaily)

		assert.ErrorIs(t, err, MalformedBarErr)
	})
}
