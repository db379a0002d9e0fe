// Helmsman API gateway — routes client traffic to backend services, probes
// their health, and retries transient failures.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/helmsman-ai/helmsman/pkg/gateway"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("GATEWAY_CONFIG", "./deploy/config/gateway.yaml"),
		"Path to gateway configuration file")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	cfg, err := gateway.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load gateway configuration", "error", err)
		os.Exit(1)
	}

	jwtSecret := []byte(os.Getenv(cfg.JWTSecretEnv))

	server, err := gateway.NewServer(cfg, jwtSecret)
	if err != nil {
		slog.Error("Failed to build gateway", "error", err)
		os.Exit(1)
	}

	probeCtx, cancelProbes := context.WithCancel(context.Background())
	defer cancelProbes()
	go server.Registry().StartProbes(probeCtx)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Gateway listening",
			"addr", cfg.ListenAddr,
			"services", len(cfg.Services),
			"routes", len(cfg.Routes))
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("Gateway server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	cancelProbes()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Gateway shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
