// Helmsman control plane server — provides the mission HTTP/WS API, manages
// queue workers, and runs the supervisor graph over claimed missions.
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
	"github.com/redis/go-redis/v9"

	"github.com/helmsman-ai/helmsman/pkg/api"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/cleanup"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/database"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/idempotency"
	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
	"github.com/helmsman-ai/helmsman/pkg/outbox"
	"github.com/helmsman-ai/helmsman/pkg/queue"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveNodeID determines the node identifier for multi-replica coordination.
// Priority: NODE_ID env > HOSTNAME env > "local"
func resolveNodeID() string {
	if id := os.Getenv("NODE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

// buildLLMClient creates the configured model client. A missing credential is
// returned as an error rather than exiting: read-only API surfaces must keep
// working, and mission starts surface the problem as a configuration error.
func buildLLMClient(cfg *config.LLMConfig) (llm.Client, error) {
	switch cfg.Provider {
	case "stub":
		return llm.NewStubClient(), nil
	default:
		client, err := llm.NewAnthropicClient(os.Getenv(cfg.APIKeyEnv), cfg.Model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// buildIdempotencyStore prefers Redis; without an address the in-process
// store keeps single-node deployments working.
func buildIdempotencyStore(cfg *config.RedisConfig) idempotency.Store {
	if cfg == nil || cfg.Addr == "" {
		slog.Warn("No Redis configured — idempotency cache is per-process only")
		return idempotency.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	slog.Info("Idempotency store using Redis", "addr", cfg.Addr)
	return idempotency.NewRedisStore(client, cfg.ProcessingTTL, cfg.ResultTTL)
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8081")
	nodeID := resolveNodeID()

	slog.Info("Starting helmsman",
		"http_port", httpPort,
		"node_id", nodeID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	jwtSecret := os.Getenv(cfg.Auth.JWTSecretEnv)
	if jwtSecret == "" {
		if cfg.IsProduction() {
			slog.Error("JWT secret is required in production", "env", cfg.Auth.JWTSecretEnv)
			os.Exit(1)
		}
		slog.Warn("No JWT secret configured — WebSocket auth will reject all clients",
			"env", cfg.Auth.JWTSecretEnv)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	missions := services.NewMissionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup: missions this node was running when
	// it last died are failed so clients are not left waiting.
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, missions, nodeID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. LLM client
	llmClient, llmErr := buildLLMClient(cfg.LLM)
	if llmErr != nil {
		slog.Warn("LLM client unavailable — mission starts will be refused",
			"provider", cfg.LLM.Provider, "error", llmErr)
		// The worker pool still needs a client for pre-existing pending
		// missions; the stub fails them fast instead of panicking.
		llmClient = llm.NewStubClient()
	} else {
		slog.Info("LLM client initialized", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)
	}

	// 6. Event fabric: local bus, NOTIFY listener, outbox drain.
	eventBus := bus.New(cfg.Bus.QueueSize)

	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), eventBus)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)

	publisher := events.NewNotifyPublisher(dbClient.DB())
	outboxWorker := outbox.NewWorker(dbClient.Client, publisher, outbox.Config{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		MaxRetries:   cfg.Outbox.MaxRetries,
	})
	outboxWorker.Start(ctx)
	defer outboxWorker.Stop()
	slog.Info("Event fabric initialized")

	// 7. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 8. Worker pool over the supervisor graph executor
	executor := queue.NewGraphExecutor(llmClient, missions, cfg.Policy)
	workerPool := queue.NewWorkerPool(nodeID, dbClient.Client, cfg.Queue, missions, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. HTTP/WS front door
	orch := orchestrator.New(missions, llmClient, llmErr)
	authenticator := api.NewAuthenticator([]byte(jwtSecret), !cfg.IsProduction(), cfg.Auth.TokenTTL)
	idemStore := buildIdempotencyStore(cfg.Redis)

	httpServer := api.NewServer(
		cfg,
		dbClient,
		orch,
		missions,
		eventService,
		workerPool,
		eventBus,
		notifyListener,
		authenticator,
		idemStore,
	)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Helmsman started successfully",
		"node_id", nodeID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: drain workers first, then the HTTP server with
	// its own timeout budget.
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete missions will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
