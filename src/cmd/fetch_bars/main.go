package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"barwatch/src/models"
	"barwatch/src/plot"
	"barwatch/src/services"
	"barwatch/src/utils"
)

type RunArgs struct {
	Symbol string
	Period string
	APIKey string
	Plot   bool
	Full   bool
	OutDir string
	GoEnv  string
}

var runCmd = &cobra.Command{
	Use:   "fetch_bars SYMBOL PERIOD",
	Short: "Fetch near real-time intraday or daily bars for one symbol",
	Long:  "Fetches OHLCV bars from Alpha Vantage, filtered to a trailing lookback window such as 90m, 6h, 1d, 5d or 1w.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		apiKey, err := cmd.Flags().GetString("api-key")
		if err != nil {
			log.Fatalf("error getting api-key: %v", err)
		}

		plotFlag, err := cmd.Flags().GetBool("plot")
		if err != nil {
			log.Fatalf("error getting plot: %v", err)
		}

		full, err := cmd.Flags().GetBool("full")
		if err != nil {
			log.Fatalf("error getting full: %v", err)
		}

		outDir, err := cmd.Flags().GetString("out-dir")
		if err != nil {
			log.Fatalf("error getting out-dir: %v", err)
		}

		os.Exit(Run(RunArgs{
			Symbol: args[0],
			Period: args[1],
			APIKey: apiKey,
			Plot:   plotFlag,
			Full:   full,
			OutDir: outDir,
			GoEnv:  goEnv,
		}))
	},
}

// Run returns the process exit code: 2 for usage and parse errors, 1 for
// fetch failures, 0 on success or when the window is empty.
func Run(args RunArgs) int {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		log.Errorf("Error: %v", err)
		return 2
	}

	apiKey := args.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ALPHAVANTAGE_API_KEY")
	}

	if apiKey == "" {
		log.Error("missing Alpha Vantage API key: pass --api-key or set ALPHAVANTAGE_API_KEY")
		return 2
	}

	result, err := services.BuildView(services.AlphaVantageBaseURL, services.ViewRequest{
		Symbol:    args.Symbol,
		Period:    args.Period,
		APIKey:    apiKey,
		ForceFull: args.Full,
	}, services.AlphaVantageParser{})
	if err != nil {
		if errors.Is(err, models.ParseErr) {
			log.Errorf("Error: %v", err)
			return 2
		}

		log.Errorf("Error fetching data: %v", err)
		return 1
	}

	log.Infof("symbol=%s period=%s interval=%s", args.Symbol, args.Period, result.Interval)

	if len(result.Window) == 0 {
		fmt.Println("No data in the requested window (market closed or period too short for chosen interval).")
		printTable(os.Stdout, result.All.Tail(5), result.Interval)
		return 0
	}

	summary, err := result.Window.Summarize()
	if err != nil {
		log.Errorf("Error summarizing window: %v", err)
		return 1
	}

	fmt.Println("\nSummary:")
	fmt.Printf("rows=%d, from=%s, to=%s\n", summary.Rows, result.Interval.FormatTime(summary.From), result.Interval.FormatTime(summary.To))
	fmt.Printf("close: mean=%.2f min=%.2f max=%.2f\n", summary.MeanClose, summary.MinClose, summary.MaxClose)

	fmt.Println("\nLast 10 bars:")
	printTable(os.Stdout, result.Window.Tail(10), result.Interval)

	if args.Plot {
		title := fmt.Sprintf("%s close (%s)", strings.ToUpper(args.Symbol), result.Interval)

		name, err := plot.RenderClosePNG(result.Window, title, args.OutDir)
		if err != nil {
			log.Errorf("Error rendering chart: %v", err)
			return 1
		}

		fmt.Println("Chart written to:", filepath.Join(args.OutDir, name))
	}

	return 0
}

func printTable(w io.Writer, candles models.Candles, interval models.Interval) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Time", "Open", "High", "Low", "Close", "Volume"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	for _, candle := range candles {
		table.Append([]string{
			interval.FormatTime(candle.Timestamp),
			fmt.Sprintf("%.2f", candle.Open),
			fmt.Sprintf("%.2f", candle.High),
			fmt.Sprintf("%.2f", candle.Low),
			fmt.Sprintf("%.2f", candle.Close),
			p.Sprintf("%d", candle.Volume),
		})
	}

	table.Render()
}

func main() {
	runCmd.PersistentFlags().Bool("plot", false, "Write a close-price chart PNG.")
	runCmd.PersistentFlags().Bool("full", false, "Use outputsize=full (slower, more data).")
	runCmd.PersistentFlags().String("api-key", "", "Alpha Vantage API key; falls back to the ALPHAVANTAGE_API_KEY environment variable.")
	runCmd.PersistentFlags().String("out-dir", ".", "The directory to write the chart PNG to.")
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")

	if err := runCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
