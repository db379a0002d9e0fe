// Package gateway implements the API gateway: a service registry with
// periodic health probes, an ordered longest-prefix routing table, and a
// retrying reverse proxy in front of the control plane and its sibling
// services.
package gateway

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ServiceConfig describes one proxied backend.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`

	// HealthPath is probed periodically; relative to BaseURL.
	HealthPath string `yaml:"health_path"`

	// Timeout bounds each proxied request to this service.
	Timeout time.Duration `yaml:"timeout"`

	// RetryCount is how many times a failed request is retried before 502.
	RetryCount int `yaml:"retry_count"`
}

// RouteConfig maps a path prefix to a backend service.
type RouteConfig struct {
	PathPrefix    string `yaml:"path_prefix"`
	TargetService string `yaml:"target_service"`

	// StripPrefix removes the matched prefix before forwarding.
	StripPrefix bool `yaml:"strip_prefix"`

	// RequireAuth gates the route behind a verified bearer token.
	RequireAuth bool `yaml:"require_auth"`
}

// Config is the gateway's YAML configuration.
type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	// DefaultService receives requests no explicit route matched.
	DefaultService string `yaml:"default_service"`

	// ProbeInterval is how often every backend's health path is probed.
	ProbeInterval time.Duration `yaml:"probe_interval"`

	// ProbeTimeout bounds a single health probe.
	ProbeTimeout time.Duration `yaml:"probe_timeout"`

	// JWTSecretEnv names the environment variable holding the HMAC secret
	// used for require_auth routes.
	JWTSecretEnv string `yaml:"jwt_secret_env"`

	Services []ServiceConfig `yaml:"services"`
	Routes   []RouteConfig   `yaml:"routes"`
}

func defaultConfig() *Config {
	return &Config{
		ListenAddr:    ":8080",
		ProbeInterval: 30 * time.Second,
		ProbeTimeout:  5 * time.Second,
		JWTSecretEnv:  "HELMSMAN_JWT_SECRET",
	}
}

func defaultServiceConfig() *ServiceConfig {
	return &ServiceConfig{
		HealthPath: "/health",
		Timeout:    30 * time.Second,
		RetryCount: 2,
	}
}

// LoadConfig reads and validates the gateway configuration file, applying
// defaults to omitted fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse gateway config: %w", err)
	}

	cfg := defaultConfig()
	if err := mergo.Merge(cfg, &raw, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge gateway config: %w", err)
	}

	for i := range cfg.Services {
		merged := defaultServiceConfig()
		if err := mergo.Merge(merged, &cfg.Services[i], mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge service %q: %w", cfg.Services[i].Name, err)
		}
		cfg.Services[i] = *merged
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Services) == 0 {
		return fmt.Errorf("gateway config: at least one service is required")
	}

	names := make(map[string]bool, len(c.Services))
	for _, svc := range c.Services {
		if svc.Name == "" {
			return fmt.Errorf("gateway config: service with empty name")
		}
		if names[svc.Name] {
			return fmt.Errorf("gateway config: duplicate service %q", svc.Name)
		}
		names[svc.Name] = true

		u, err := url.Parse(svc.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("gateway config: service %q has invalid base_url %q", svc.Name, svc.BaseURL)
		}
	}

	if c.DefaultService != "" && !names[c.DefaultService] {
		return fmt.Errorf("gateway config: default_service %q is not a configured service", c.DefaultService)
	}

	for _, route := range c.Routes {
		if route.PathPrefix == "" {
			return fmt.Errorf("gateway config: route with empty path_prefix")
		}
		if !names[route.TargetService] {
			return fmt.Errorf("gateway config: route %q targets unknown service %q",
				route.PathPrefix, route.TargetService)
		}
	}
	return nil
}
