package services

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"barwatch/src/models"
)

// ViewRequest is one end-to-end fetch-and-filter invocation, shared by the
// CLI and the web form. The API key is resolved by the adapter and passed
// down explicitly; nothing below reads the environment.
type ViewRequest struct {
	Symbol    string
	Period    string
	APIKey    string
	ForceFull bool
}

// ViewResult carries both the filtered window and everything the provider
// returned, so adapters can show the most recent available bars when the
// window comes back empty.
type ViewResult struct {
	Lookback models.Lookback
	Interval models.Interval
	All      models.Candles
	Window   models.Candles
}

// BuildView runs the pipeline: parse the lookback, choose the sampling
// interval and output size, fetch, and filter to [cutoff, now). An empty
// Window with a nil error means no bars fell inside the lookback; callers
// report that as a distinct outcome, not a failure.
func BuildView(baseURL string, req ViewRequest, parser SeriesParser) (ViewResult, error) {
	lookback, err := models.ParseLookback(req.Period)
	if err != nil {
		return ViewResult{}, fmt.Errorf("BuildView: %w", err)
	}

	interval := models.ChooseInterval(lookback)
	outputSize := models.ChooseOutputSize(lookback, req.ForceFull)

	if outputSize == models.OutputSizeFull && !req.ForceFull {
		log.Infof("BuildView: period %s exceeds 100 days, forcing full output size", req.Period)
	}

	candles, err := FetchBars(baseURL, FetchRequest{
		Symbol:     req.Symbol,
		Interval:   interval,
		APIKey:     req.APIKey,
		OutputSize: outputSize,
	}, parser)
	if err != nil {
		return ViewResult{}, fmt.Errorf("BuildView: %w", err)
	}

	cutoff := models.NaiveNow().Add(-lookback.Duration())

	return ViewResult{
		Lookback: lookback,
		Interval: interval,
		All:      candles,
		Window:   candles.Window(cutoff),
	}, nil
}
