package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"barwatch/src/models"
)

// AlphaVantageBaseURL is the provider's single query endpoint; the series
// requested is selected via the function query parameter.
const AlphaVantageBaseURL = "https://www.alphavantage.co/query"

const seriesKeyPrefix = "Time Series"

// SeriesParser extracts the bar payload from a raw provider response. The
// series key is dynamically named per endpoint and interval, so the lookup
// lives behind this capability rather than as a literal scan at each call
// site; an alternate provider or schema version substitutes here.
type SeriesParser interface {
	ParseSeries(body []byte, interval models.Interval) (models.Candles, error)
}

// AlphaVantageParser parses the Alpha Vantage JSON envelope.
type AlphaVantageParser struct{}

func (AlphaVantageParser) ParseSeries(body []byte, interval models.Interval) (models.Candles, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("AlphaVantageParser.ParseSeries: failed to decode json: %v: %w", err, models.UnexpectedResponseErr)
	}

	// Throttle and error notices come back with HTTP 200 and must be checked
	// before scanning for the series key.
	if msg, found := envelope["Note"]; found {
		return nil, fmt.Errorf("AlphaVantageParser.ParseSeries: %s: %w", rawString(msg), models.RateLimitedErr)
	}

	if msg, found := envelope["Information"]; found {
		return nil, fmt.Errorf("AlphaVantageParser.ParseSeries: %s: %w", rawString(msg), models.ProviderInfoErr)
	}

	if msg, found := envelope["Error Message"]; found {
		return nil, fmt.Errorf("AlphaVantageParser.ParseSeries: %s: %w", rawString(msg), models.ProviderErr)
	}

	var series map[string]models.AlphaVantageBarDTO
	seriesFound := false
	for key, raw := range envelope {
		if !strings.HasPrefix(key, seriesKeyPrefix) {
			continue
		}

		if err := json.Unmarshal(raw, &series); err != nil {
			return nil, fmt.Errorf("AlphaVantageParser.ParseSeries: failed to decode series %q: %v: %w", key, err, models.UnexpectedResponseErr)
		}

		seriesFound = true
		break
	}

	if !seriesFound {
		return nil, fmt.Errorf("AlphaVantageParser.ParseSeries: keys %v: %w", envelopeKeys(envelope), models.UnexpectedResponseErr)
	}

	candles := make(models.Candles, 0, len(series))
	for timestamp, dto := range series {
		candle, err := dto.ToCandle(timestamp, interval)
		if err != nil {
			return nil, fmt.Errorf("AlphaVantageParser.ParseSeries: %w", err)
		}

		candles = append(candles, candle)
	}

	return models.SortedUnique(candles), nil
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}

	return s
}

func envelopeKeys(envelope map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(envelope))
	for key := range envelope {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// FetchRequest describes one provider call.
type FetchRequest struct {
	Symbol     string
	Interval   models.Interval
	APIKey     string
	OutputSize models.OutputSize
}

// FetchBars issues one GET against the provider query endpoint and returns
// the normalized bar series, sorted ascending and unique per timestamp. One
// outbound call per invocation; no caching, no retry.
func FetchBars(baseURL string, fr FetchRequest, parser SeriesParser) (models.Candles, error) {
	client := http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequest(http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("FetchBars: failed to create request: %w", err)
	}

	q := req.URL.Query()
	if fr.Interval.IsIntraday() {
		q.Add("function", "TIME_SERIES_INTRADAY")
		q.Add("interval", string(fr.Interval))
	} else {
		q.Add("function", "TIME_SERIES_DAILY")
	}
	q.Add("symbol", fr.Symbol)
	q.Add("apikey", fr.APIKey)
	q.Add("datatype", "json")
	q.Add("outputsize", string(fr.OutputSize))

	req.URL.RawQuery = q.Encode()
	req.Header.Add("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("FetchBars: failed to fetch bars: %v: %w", err, models.TransportErr)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("FetchBars: failed to read response body: %v: %w", err, models.TransportErr)
	}

	if res.StatusCode != http.StatusOK {
		// Some provider failures still carry a recognizable error payload;
		// surface those over a bare status code.
		if _, parseErr := parser.ParseSeries(body, fr.Interval); isProviderPayloadErr(parseErr) {
			return nil, fmt.Errorf("FetchBars: %w", parseErr)
		}

		return nil, fmt.Errorf("FetchBars: http status %v: %w", res.Status, models.TransportErr)
	}

	candles, err := parser.ParseSeries(body, fr.Interval)
	if err != nil {
		return nil, fmt.Errorf("FetchBars: %w", err)
	}

	log.Debugf("FetchBars: fetched %d %s bars for %s", len(candles), fr.Interval, fr.Symbol)

	return candles, nil
}

func isProviderPayloadErr(err error) bool {
	return errors.Is(err, models.RateLimitedErr) ||
		errors.Is(err, models.ProviderInfoErr) ||
		errors.Is(err, models.ProviderErr)
}
