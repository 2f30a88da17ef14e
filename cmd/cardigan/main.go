// Cardigan server: watches for broadcast caption transcripts, runs them
// through the phased LLM pipeline, and serves the control API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cardigan-project/cardigan/pkg/api"
	"github.com/cardigan-project/cardigan/pkg/artifacts"
	"github.com/cardigan-project/cardigan/pkg/cleanup"
	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/database"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/ingest"
	"github.com/cardigan-project/cardigan/pkg/llm"
	"github.com/cardigan-project/cardigan/pkg/queue"
	"github.com/cardigan-project/cardigan/pkg/services"
	"github.com/cardigan-project/cardigan/pkg/slack"
	"github.com/cardigan-project/cardigan/pkg/sst"
	"github.com/cardigan-project/cardigan/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env from the config directory before anything reads the
	// environment.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	slog.Info("Starting cardigan",
		"version", version.Full(),
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration: cardigan.yaml plus the agent and provider files.
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database. NewClient applies pending migrations.
	dbClient, err := database.NewClient(ctx, database.Config{
		Path:         getEnv("DATABASE_PATH", "cardigan.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	})
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Database ready", "path", getEnv("DATABASE_PATH", "cardigan.db"))

	// 3. Runtime policy: file config overlaid with persisted API updates,
	// published as an atomic snapshot for workers to claim against.
	holder := config.NewHolder(cfg.Snapshot())
	configService := services.NewConfigService(dbClient.Client, cfg, holder)
	if err := configService.LoadOverrides(ctx); err != nil {
		slog.Error("Failed to load persisted config overrides", "error", err)
		os.Exit(1)
	}

	// 4. Domain services and the event stream.
	jobService := services.NewJobService(dbClient.Client, cfg.Defaults)
	eventService := services.NewEventService(dbClient.Client)
	ingestService := services.NewIngestService(dbClient.Client)

	bus := events.NewBus(nil)
	publisher := events.NewPublisher(eventService, bus, nil)
	hub := events.NewHub(bus, eventService, 10*time.Second, nil)

	store, err := artifacts.NewStore(cfg.Defaults.OutputDir)
	if err != nil {
		slog.Error("Failed to open artifact store", "error", err)
		os.Exit(1)
	}

	metadata := sst.NewService(cfg.SST, nil)

	// 5. LLM client and the phase executor.
	llmClient := llm.NewClient(cfg.LLMProviderRegistry, holder, llm.WithEventRecorder(publisher))
	engine := queue.NewEngine(jobService, llmClient, cfg.LLMProviderRegistry, cfg.AgentRegistry, store, publisher, metadata, nil)

	// 6. Requeue jobs orphaned by the previous process before workers start.
	if count, err := queue.ResetStartupOrphans(ctx, jobService, publisher, nil); err != nil {
		slog.Error("Failed to reset startup orphans", "error", err)
	} else if count > 0 {
		slog.Info("Requeued orphaned jobs", "count", count)
	}

	// 7. Worker pool and the stale-job reaper.
	pool := queue.NewWorkerPool(jobService, engine, holder, publisher, nil)
	pool.Start(ctx)

	reaper := queue.NewReaper(jobService, publisher, holder, nil)
	reaper.Start()

	// 8. Ingest watcher and retention cleanup.
	watcher := ingest.NewWatcher(cfg.Ingest, jobService, ingestService, publisher, nil)
	if err := watcher.Start(); err != nil {
		slog.Error("Failed to start ingest watcher", "error", err)
		os.Exit(1)
	}

	retention := cleanup.NewService(cfg.Retention, jobService, eventService, nil)
	retention.Start(ctx)

	// Optional Slack notifications; a missing token leaves the notifier a
	// no-op.
	slackService := slack.NewService(slack.ServiceConfig{
		Token:        os.Getenv("SLACK_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
	})
	notifier := slack.NewNotifier(slackService, bus, jobService, nil)
	notifier.Start()

	// 9. HTTP server.
	server := api.NewServer(jobService, eventService, configService, pool, hub, publisher, store, dbClient, nil)
	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	slog.Info("Cardigan started",
		"workers", holder.Load().Queue.MaxConcurrentJobs,
		"ingest_enabled", cfg.Ingest.Enabled)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop taking work, drain HTTP, then wait for the
	// active jobs.
	watcher.Stop()
	notifier.Stop()
	retention.Stop()
	reaper.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	pool.Stop()
	slog.Info("Cardigan stopped")
}
