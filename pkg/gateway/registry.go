package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ServiceHealth is the cached outcome of the most recent probe.
type ServiceHealth struct {
	Healthy      bool          `json:"healthy"`
	LastCheck    time.Time     `json:"last_check"`
	ResponseTime time.Duration `json:"response_time"`
	Error        string        `json:"error,omitempty"`
}

// Registry holds the immutable backend list and the mutable health cache.
type Registry struct {
	services map[string]ServiceConfig

	probeInterval time.Duration
	probeClient   *http.Client

	mu     sync.RWMutex
	health map[string]ServiceHealth
}

// NewRegistry builds a registry from the configured services. Every service
// starts unhealthy until its first probe completes.
func NewRegistry(cfg *Config) *Registry {
	services := make(map[string]ServiceConfig, len(cfg.Services))
	health := make(map[string]ServiceHealth, len(cfg.Services))
	for _, svc := range cfg.Services {
		services[svc.Name] = svc
		health[svc.Name] = ServiceHealth{}
	}
	return &Registry{
		services:      services,
		probeInterval: cfg.ProbeInterval,
		probeClient:   &http.Client{Timeout: cfg.ProbeTimeout},
		health:        health,
	}
}

// Service looks up a backend by name.
func (r *Registry) Service(name string) (ServiceConfig, bool) {
	svc, ok := r.services[name]
	return svc, ok
}

// Health returns the cached probe result for one service.
func (r *Registry) Health(name string) (ServiceHealth, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.health[name]
	return h, ok
}

// Snapshot returns a copy of every service's cached health.
func (r *Registry) Snapshot() map[string]ServiceHealth {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]ServiceHealth, len(r.health))
	for name, h := range r.health {
		out[name] = h
	}
	return out
}

// StartProbes probes every backend immediately, then on the configured
// interval until ctx is cancelled.
func (r *Registry) StartProbes(ctx context.Context) {
	r.probeAll(ctx)

	ticker := time.NewTicker(r.probeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.probeAll(ctx)
		}
	}
}

func (r *Registry) probeAll(ctx context.Context) {
	var wg sync.WaitGroup
	for name, svc := range r.services {
		wg.Add(1)
		go func(name string, svc ServiceConfig) {
			defer wg.Done()
			r.probe(ctx, name, svc)
		}(name, svc)
	}
	wg.Wait()
}

func (r *Registry) probe(ctx context.Context, name string, svc ServiceConfig) {
	probeURL := strings.TrimSuffix(svc.BaseURL, "/") + svc.HealthPath

	start := time.Now()
	result := ServiceHealth{LastCheck: start}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		result.Error = err.Error()
	} else if resp, err := r.probeClient.Do(req); err != nil {
		result.Error = err.Error()
	} else {
		_ = resp.Body.Close()
		result.ResponseTime = time.Since(start)
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			result.Healthy = true
		} else {
			result.Error = fmt.Sprintf("health probe returned %d", resp.StatusCode)
		}
	}

	r.mu.Lock()
	previous := r.health[name]
	r.health[name] = result
	r.mu.Unlock()

	if previous.Healthy != result.Healthy {
		slog.Info("Backend health changed",
			"service", name,
			"healthy", result.Healthy,
			"error", result.Error)
	}
}
