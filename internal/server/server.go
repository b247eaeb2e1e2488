// Package server exposes the data fetcher and model generator over HTTP,
// so spreadsheet add-ins can pull live values without shelling out.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/dcf-builder/internal/config"
	"github.com/aristath/dcf-builder/internal/database/repositories"
	"github.com/aristath/dcf-builder/internal/fetcher"
	"github.com/aristath/dcf-builder/internal/udf"
)

// Config holds server configuration
type Config struct {
	Port    int
	Log     zerolog.Logger
	Fetcher *fetcher.Fetcher
	UDF     *udf.Service
	Runs    *repositories.RunRepository
	Config  *config.Config
	DevMode bool
}

// Server represents the HTTP server
type Server struct {
	router  *chi.Mux
	server  *http.Server
	log     zerolog.Logger
	fetcher *fetcher.Fetcher
	udf     *udf.Service
	runs    *repositories.RunRepository
	cfg     *config.Config
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		log:     cfg.Log.With().Str("component", "server").Logger(),
		fetcher: cfg.Fetcher,
		udf:     cfg.UDF,
		runs:    cfg.Runs,
		cfg:     cfg.Config,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)

	// Workbook generation can take a while when nothing is cached.
	s.router.Use(middleware.Timeout(120 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Spreadsheet lookup functions.
		r.Route("/udf", func(r chi.Router) {
			r.Get("/price/{ticker}", s.handlePrice)
			r.Get("/market-cap/{ticker}", s.handleMarketCap)
			r.Get("/beta/{ticker}", s.handleBeta)
			r.Get("/shares/{ticker}", s.handleShares)
			r.Get("/high-52w/{ticker}", s.handleHigh52W)
			r.Get("/low-52w/{ticker}", s.handleLow52W)
			r.Get("/wacc/{ticker}", s.handleWACC)
			r.Get("/revenue/{ticker}/{year}", s.handleRevenue)
			r.Get("/ebitda/{ticker}/{year}", s.handleEBITDA)
			r.Get("/risk-free-rate", s.handleRiskFreeRate)
		})

		r.Post("/generate", s.handleGenerate)
		r.Get("/runs", s.handleRuns)
		r.Post("/cache/clear", s.handleCacheClear)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router returns the underlying router, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
