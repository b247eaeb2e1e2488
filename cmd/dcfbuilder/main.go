package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aristath/dcf-builder/internal/cache"
	"github.com/aristath/dcf-builder/internal/clients/fred"
	"github.com/aristath/dcf-builder/internal/clients/yahoo"
	"github.com/aristath/dcf-builder/internal/config"
	"github.com/aristath/dcf-builder/internal/fetcher"
	"github.com/aristath/dcf-builder/pkg/logger"
)

// Global state shared by subcommands, populated in initApp.
var (
	cfg   *config.Config
	log   zerolog.Logger
	fetch *fetcher.Fetcher
)

var rootCmd = &cobra.Command{
	Use:   "dcfbuilder",
	Short: "Build DCF valuation workbooks from live market data",
	Long: `dcfbuilder fetches market data, financial statements and treasury
rates, and renders a fully formatted multi-sheet DCF valuation model as an
Excel workbook. Fetched data is cached locally so repeated runs stay fast
and work offline.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

func initApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	c, err := cache.New(cfg.CacheDir, log)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	fetch = fetcher.New(
		yahoo.NewClient(log),
		fred.NewClient(cfg.FredAPIKey, log),
		c, cfg, log,
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
