package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/calcio/internal/config"
	server "github.com/mauv0809/calcio/internal/http"
	"github.com/mauv0809/calcio/internal/league"
	"github.com/mauv0809/calcio/internal/metrics"
	"github.com/mauv0809/calcio/internal/selector"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Invalid log level %q: %s", cfg.LogLevel, err)
	}
	log.SetLevel(level)

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	tracker := league.New(metricsSvc)
	cues := server.NewCueBoard()
	widget := selector.New(
		selector.DefaultItems(),
		cues,
		selector.NewTimerScheduler(),
		metricsSvc,
		selector.Options{
			FrameInterval: cfg.Selector.FrameInterval,
			EnterDuration: cfg.Selector.EnterDuration,
		},
	)

	s := server.NewServer(
		tracker,
		widget,
		cues,
		metricsSvc,
		metricsHandler,
		cfg,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port, "assets_dir", cfg.AssetsDir)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
