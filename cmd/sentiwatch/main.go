// Sentiwatch server — runs the sentiment pipeline orchestrator, the failsafe
// prediction dispatcher, and the HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ohsono/sentiwatch/pkg/alerts"
	"github.com/ohsono/sentiwatch/pkg/api"
	"github.com/ohsono/sentiwatch/pkg/config"
	"github.com/ohsono/sentiwatch/pkg/database"
	"github.com/ohsono/sentiwatch/pkg/failsafe"
	"github.com/ohsono/sentiwatch/pkg/lexicon"
	"github.com/ohsono/sentiwatch/pkg/metrics"
	"github.com/ohsono/sentiwatch/pkg/model"
	"github.com/ohsono/sentiwatch/pkg/pipeline"
	"github.com/ohsono/sentiwatch/pkg/registry"
	"github.com/ohsono/sentiwatch/pkg/scheduler"
	"github.com/ohsono/sentiwatch/pkg/source"
	"github.com/ohsono/sentiwatch/pkg/store"
	"github.com/ohsono/sentiwatch/pkg/version"
)

const shutdownTimeout = 15 * time.Second

func main() {
	envPath := flag.String("env-file", ".env", "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envPath)
	}

	ctx := context.Background()

	// 1. Resolve configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting sentiwatch",
		"version", version.GitCommit,
		"http_port", cfg.HTTP.Port,
		"model_service", cfg.Model.BaseURL != "",
		"scheduler_enabled", cfg.Scheduler.Enabled)

	// 2. Result store
	dbClient, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize result store", "error", err)
		os.Exit(2)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	m := metrics.New()

	// 3. Prediction path: model client behind the failsafe, lexicon fallback
	modelClient := model.New(cfg.Model.BaseURL, cfg.Model.Timeout)
	dispatcher := failsafe.New(modelClient, lexicon.New(), failsafe.Config{
		MaxFailures: cfg.Circuit.MaxFailures,
		Window:      cfg.Circuit.Window,
		Cooldown:    cfg.Circuit.Cooldown,
	}, m)
	if !modelClient.Enabled() {
		slog.Info("MODEL_SERVICE_URL not set, all predictions use the lexicon fallback")
	}

	// 4. Content source and alert rules
	src := source.NewRedditClient(source.Config{
		BaseURL:      cfg.Source.BaseURL,
		UserAgent:    cfg.Source.UserAgent,
		PageTimeout:  cfg.Source.PageTimeout,
		ClientID:     cfg.Source.ClientID,
		ClientSecret: cfg.Source.ClientSecret,
	})

	rules, err := alerts.LoadRules(cfg.AlertRulesPath)
	if err != nil {
		slog.Error("Failed to load alert rules", "error", err)
		os.Exit(1)
	}
	evaluator, err := alerts.NewEvaluator(rules)
	if err != nil {
		slog.Error("Failed to compile alert rules", "error", err)
		os.Exit(1)
	}
	slog.Info("Alert rules loaded", "rules", len(rules))

	// 5. Task registry with TTL reaper
	reg := registry.New(cfg.Registry.TTL)
	reaper := registry.NewReaper(reg, registry.DefaultReapInterval)
	reaper.Start(ctx)
	defer reaper.Stop()

	// 6. Pipeline orchestrator
	classifications := store.NewClassificationService(dbClient.Client)
	alertStore := store.NewAlertService(dbClient.Client)

	orchestrator := pipeline.New(src, dispatcher, classifications, alertStore, evaluator, reg, m, pipeline.Config{
		MaxParallel:           cfg.Pipeline.MaxParallel,
		PersistFanout:         cfg.Pipeline.PersistFanout,
		ScratchDir:            cfg.Pipeline.ScratchDir,
		StoreFailureThreshold: cfg.Pipeline.StoreFailureThreshold,
		DefaultModel:          cfg.Pipeline.DefaultModel,
	})

	// 7. Periodic scheduler (optional)
	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched, err = scheduler.New(orchestrator, scheduler.Config{
			Interval:   cfg.Scheduler.Interval,
			JitterFrac: cfg.Scheduler.JitterFrac,
			Preset:     cfg.Scheduler.Preset,
		})
		if err != nil {
			slog.Error("Failed to create scheduler", "error", err)
			os.Exit(1)
		}
		sched.Start(ctx)
	}

	// 8. HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, dispatcher, orchestrator, classifications, alertStore, m)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + strconv.Itoa(cfg.HTTP.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Sentiwatch started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop intake first, then drain pipelines
	if sched != nil {
		sched.Stop()
		slog.Info("Scheduler stopped")
	}

	orchestrator.Stop()
	slog.Info("Pipelines drained")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	slog.Info("Sentiwatch stopped")
}
