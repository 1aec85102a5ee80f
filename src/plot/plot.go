package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	chart "github.com/wcharczuk/go-chart/v2"

	"barwatch/src/models"
)

// RenderClosePNG writes a close-price line chart for the given bars into
// outDir and returns the generated file name. Each call gets a unique name so
// concurrent web requests never race on a shared chart path.
func RenderClosePNG(candles models.Candles, title string, outDir string) (string, error) {
	if len(candles) < 2 {
		return "", fmt.Errorf("RenderClosePNG: need at least 2 bars to plot, got %d", len(candles))
	}

	times := make([]time.Time, 0, len(candles))
	closes := make([]float64, 0, len(candles))
	for _, candle := range candles {
		times = append(times, candle.Timestamp)
		closes = append(closes, candle.Close)
	}

	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{
			Name: "Time",
		},
		YAxis: chart.YAxis{
			Name: "Close",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "close",
				XValues: times,
				YValues: closes,
			},
		},
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("RenderClosePNG: failed to create output dir: %w", err)
	}

	name := fmt.Sprintf("chart-%s.png", uuid.NewString())

	f, err := os.Create(filepath.Join(outDir, name))
	if err != nil {
		return "", fmt.Errorf("RenderClosePNG: failed to create chart file: %w", err)
	}

	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("RenderClosePNG: failed to render chart: %w", err)
	}

	return name, nil
}
