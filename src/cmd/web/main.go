package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"barwatch/src/config"
	"barwatch/src/handler"
	"barwatch/src/services"
	"barwatch/src/utils"
)

var runCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the symbol+period lookup form over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		if err := Run(goEnv, configPath); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(goEnv string, configPath string) error {
	if err := utils.InitEnvironmentVariables(goEnv); err != nil {
		return err
	}

	apiKey := os.Getenv("ALPHAVANTAGE_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("missing ALPHAVANTAGE_API_KEY environment variable")
	}

	cfg, err := config.LoadWebConfig(configPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.ChartsDir, 0755); err != nil {
		return fmt.Errorf("failed to create charts dir %s: %w", cfg.ChartsDir, err)
	}

	viewHandler := &handler.ViewHandler{
		APIKey:    apiKey,
		BaseURL:   services.AlphaVantageBaseURL,
		ChartsDir: cfg.ChartsDir,
		PageTitle: cfg.PageTitle,
		Parser:    services.AlphaVantageParser{},
	}

	router := mux.NewRouter()
	router.HandleFunc("/", viewHandler.ShowForm).Methods("GET")
	router.HandleFunc("/view", viewHandler.SubmitForm).Methods("POST")
	router.PathPrefix("/charts/").Handler(http.StripPrefix("/charts/", http.FileServer(http.Dir(cfg.ChartsDir))))

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Infof("listening on %s", cfg.ListenAddr)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("config", "", "Path to the YAML config file.")

	if err := runCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
