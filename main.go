package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-server/cache"
	"portfolio-server/config"
	_ "portfolio-server/docs" // Swagger docs
	"portfolio-server/email"
	"portfolio-server/handler"
	appLogger "portfolio-server/logger"
	"portfolio-server/metrics"
	"portfolio-server/middleware"
	"portfolio-server/playground"
	"portfolio-server/projects"
	redisClient "portfolio-server/redis"
	"portfolio-server/store"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Portfolio Server API
// @version 1.0
// @description Backend for the portfolio site: contact relay, feedback, project catalog, code playground and the metrics dashboard.

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name contact
// @tag.description Contact form and anonymous feedback

// @tag.name projects
// @tag.description Project catalog, related-project ranking and QR codes

// @tag.name playground
// @tag.description Interactive code example repository

// @tag.name dashboard
// @tag.description Simulated metrics dashboard and exports

// @tag.name system
// @tag.description Health checks and cache metrics

func main() {
	// Initialize logger
	appLogger.Initialize()

	// Load configuration
	cfg := config.MustLoadConfig()
	log.Info().Msg("Configuration loaded successfully")

	// Redis is optional; a nil client turns the submission log into a no-op
	rdb := redisClient.NewClient(cfg.Redis)
	submissionStore := store.New(rdb)

	// Initialize cache (if enabled)
	var cacheClient *cache.Cache
	if cfg.Cache.Enabled {
		var err error
		cacheClient, err = cache.New(cfg.Cache)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize cache")
		}
	} else {
		log.Info().Msg("Cache disabled in configuration")
	}

	// Domain services
	metricsService := metrics.NewService(
		cfg.Dashboard.Seed,
		time.Duration(cfg.Dashboard.RefreshSeconds)*time.Second,
		time.Now().UTC(),
	)
	projectRepo := projects.NewRepository(projects.DefaultCatalog())
	playgroundRepo := playground.NewRepository(playground.DefaultCatalog())
	mailer := email.NewService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.FromEmail,
		cfg.SMTP.FromName,
		cfg.SMTP.OwnerEmail,
		cfg.SMTP.Enabled,
	)

	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	metricsService.StartAutoRefresh(refreshCtx)
	log.Info().
		Int("refresh_seconds", cfg.Dashboard.RefreshSeconds).
		Int64("seed", cfg.Dashboard.Seed).
		Msg("Metrics refresher started")

	// Create handler with dependency injection
	h := handler.New(cfg, metricsService, projectRepo, playgroundRepo, mailer, submissionStore, cacheClient)

	// Set up router
	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	botProtection := middleware.NewBotProtection(cfg.Security.BotMaxRequestsPerMinute, cfg.Security.BotDetectionEnabled)

	r.Use(middleware.RequestLogger)
	r.Use(rateLimiter.Limit)

	// API routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/cache/metrics", h.CacheMetrics).Methods("GET")
	r.Handle("/api/contact", botProtection.Protect(http.HandlerFunc(h.SubmitContact))).Methods("POST")
	r.HandleFunc("/api/feedback", h.SubmitFeedback).Methods("POST")
	r.HandleFunc("/api/projects", h.ListProjects).Methods("GET")
	r.HandleFunc("/api/projects/{id}", h.GetProject).Methods("GET")
	r.HandleFunc("/api/projects/{id}/related", h.RelatedProjects).Methods("GET")
	r.HandleFunc("/api/projects/{id}/qr", h.ProjectQR).Methods("GET")
	r.HandleFunc("/api/dashboard/metrics", h.DashboardMetrics).Methods("GET")
	r.HandleFunc("/api/dashboard/charts", h.DashboardCharts).Methods("GET")
	r.HandleFunc("/api/dashboard/export", h.DashboardExport).Methods("GET")
	r.HandleFunc("/api/playground/examples", h.ListExamples).Methods("GET")
	r.HandleFunc("/api/playground/examples/{id}", h.GetExample).Methods("GET")
	r.HandleFunc("/api/playground/examples/{id}/like", h.LikeExample).Methods("POST")
	r.HandleFunc("/api/playground/examples/{id}/fork", h.ForkExample).Methods("POST")
	r.HandleFunc("/api/playground/examples/{id}/files", h.AddExampleFile).Methods("POST")
	r.HandleFunc("/api/playground/examples/{id}/files/{fileID}", h.RemoveExampleFile).Methods("DELETE")

	// Swagger documentation
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Locale redirect sits outside the router so unprefixed page paths
	// never reach route matching; CORS wraps everything.
	localeRedirect := middleware.NewLocaleRedirect(cfg.Locale.Supported, cfg.Locale.Default)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	root := corsHandler.Handler(localeRedirect.Redirect(r))

	// Configure HTTP server
	serverAddress := fmt.Sprintf("%s:%s", cfg.WebServer.IP, cfg.WebServer.Port)
	server := &http.Server{
		Addr:         serverAddress,
		Handler:      root,
		ReadTimeout:  time.Duration(cfg.WebServer.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WebServer.WriteTimeout) * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("address", serverAddress).
			Str("scheme", cfg.WebServer.Scheme).
			Msg("Starting server")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.WebServer.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	// Stop the metrics refresher
	stopRefresh()
	metricsService.StopAutoRefresh()

	// Close cache
	if cacheClient != nil {
		cacheClient.Close()
	}

	// Close Redis connection
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}

	log.Info().Msg("Server stopped gracefully")
}
