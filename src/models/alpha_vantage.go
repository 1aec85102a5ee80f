package models

import (
	"fmt"
	"strconv"
)

// AlphaVantageBarDTO mirrors one entry of an Alpha Vantage time-series
// payload. Every field arrives as a string.
type AlphaVantageBarDTO struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// ToCandle converts the DTO keyed by its payload timestamp. A price field
// that fails to parse makes the whole response malformed. Volume occasionally
// arrives with fractional formatting, so it is parsed as a float and
// truncated rather than parsed as an integer.
func (dto AlphaVantageBarDTO) ToCandle(timestamp string, interval Interval) (Candle, error) {
	ts, err := ParseProviderTime(timestamp, interval)
	if err != nil {
		return Candle{}, fmt.Errorf("AlphaVantageBarDTO.ToCandle: %v: %w", err, MalformedBarErr)
	}

	open, err := parsePrice("open", dto.Open)
	if err != nil {
		return Candle{}, err
	}

	high, err := parsePrice("high", dto.High)
	if err != nil {
		return Candle{}, err
	}

	low, err := parsePrice("low", dto.Low)
	if err != nil {
		return Candle{}, err
	}

	closePrice, err := parsePrice("close", dto.Close)
	if err != nil {
		return Candle{}, err
	}

	volume, err := strconv.ParseFloat(dto.Volume, 64)
	if err != nil {
		return Candle{}, fmt.Errorf("AlphaVantageBarDTO.ToCandle: invalid volume %q: %w", dto.Volume, MalformedBarErr)
	}

	return Candle{
		Timestamp: ts,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    int64(volume),
	}, nil
}

func parsePrice(name string, value string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("AlphaVantageBarDTO.ToCandle: invalid %s %q: %w", name, value, MalformedBarErr)
	}

	return price, nil
}
