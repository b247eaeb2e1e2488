package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aristath/dcf-builder/internal/database"
	"github.com/aristath/dcf-builder/internal/database/repositories"
	"github.com/aristath/dcf-builder/internal/scheduler"
	"github.com/aristath/dcf-builder/internal/server"
	"github.com/aristath/dcf-builder/internal/udf"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for spreadsheet add-ins",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var (
	servePort int
	serveWarm []string
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides GO_PORT)")
	serveCmd.Flags().StringSliceVar(&serveWarm, "warm", nil, "Tickers to keep warm in the cache")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	// Background refresh keeps the cache inside its TTLs.
	sched := scheduler.New(log)
	if err := sched.AddJob("@hourly", scheduler.NewRiskFreeRefreshJob(fetch, log)); err != nil {
		return err
	}
	if len(serveWarm) > 0 {
		if err := sched.AddJob("@every 15m", scheduler.NewQuoteWarmJob(fetch, serveWarm, log)); err != nil {
			return err
		}
	}
	sched.Start()
	defer sched.Stop()

	srv := server.New(server.Config{
		Port:    port,
		Log:     log,
		Fetcher: fetch,
		UDF:     udf.New(fetch, log),
		Runs:    repositories.NewRunRepository(db.Conn(), log),
		Config:  cfg,
		DevMode: cfg.DevMode,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info().Int("port", port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}
