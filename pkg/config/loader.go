package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// HelmsmanYAMLConfig represents the complete helmsman.yaml file structure
type HelmsmanYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	Policy    *PolicyConfig     `yaml:"policy"`
	Queue     *QueueConfig      `yaml:"queue"`
	Outbox    *OutboxConfig     `yaml:"outbox"`
	LLM       *LLMConfig        `yaml:"llm"`
	Redis     *RedisConfig      `yaml:"redis"`
	Bus       *BusConfig        `yaml:"bus"`
	Retention *RetentionConfig  `yaml:"retention"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Environment      string      `yaml:"environment"`
	DashboardURL     string      `yaml:"dashboard_url"`
	AllowedWSOrigins []string    `yaml:"allowed_ws_origins"`
	Auth             *AuthConfig `yaml:"auth"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load helmsman.yaml from configDir
//  2. Expand environment variables
//  3. Merge user-provided values over built-in defaults
//  4. Validate the resolved configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"environment", cfg.Environment,
		"llm_provider", cfg.LLM.Provider,
		"workers", cfg.Queue.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	raw, err := loadHelmsmanYAML(configDir)
	if err != nil {
		return nil, NewLoadError("helmsman.yaml", err)
	}

	queueCfg := DefaultQueueConfig()
	if raw.Queue != nil {
		if err := mergo.Merge(queueCfg, raw.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if raw.Retention != nil {
		if err := mergo.Merge(retentionCfg, raw.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	policyCfg := defaultPolicyConfig()
	if raw.Policy != nil {
		if err := mergo.Merge(policyCfg, raw.Policy, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge policy config: %w", err)
		}
	}

	outboxCfg := defaultOutboxConfig()
	if raw.Outbox != nil {
		if err := mergo.Merge(outboxCfg, raw.Outbox, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge outbox config: %w", err)
		}
	}

	llmCfg := defaultLLMConfig()
	if raw.LLM != nil {
		if err := mergo.Merge(llmCfg, raw.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	redisCfg := defaultRedisConfig()
	if raw.Redis != nil {
		if err := mergo.Merge(redisCfg, raw.Redis, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge redis config: %w", err)
		}
	}
	redisCfg.Password = os.Getenv("REDIS_PASSWORD")

	busCfg := &BusConfig{QueueSize: 1024}
	if raw.Bus != nil && raw.Bus.QueueSize > 0 {
		busCfg.QueueSize = raw.Bus.QueueSize
	}

	return &Config{
		configDir:        configDir,
		Environment:      resolveEnvironment(raw.System),
		DashboardURL:     resolveDashboardURL(raw.System),
		AllowedWSOrigins: resolveAllowedWSOrigins(raw.System),
		Auth:             resolveAuthConfig(raw.System),
		Policy:           policyCfg,
		Queue:            queueCfg,
		Outbox:           outboxCfg,
		Retention:        retentionCfg,
		LLM:              llmCfg,
		Redis:            redisCfg,
		Bus:              busCfg,
	}, nil
}

func loadHelmsmanYAML(configDir string) (*HelmsmanYAMLConfig, error) {
	path := filepath.Join(configDir, "helmsman.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax
	data = ExpandEnv(data)

	var config HelmsmanYAMLConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}

func defaultPolicyConfig() *PolicyConfig {
	return &PolicyConfig{
		MaxIterations:        3,
		MaxIterationsHardCap: 5,
		ApprovalThreshold:    7.0,
	}
}

func defaultOutboxConfig() *OutboxConfig {
	return &OutboxConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		MaxRetries:   5,
	}
}

func defaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Provider:  "anthropic",
		Model:     "claude-sonnet-4-20250514",
		APIKeyEnv: "ANTHROPIC_API_KEY",
		Timeout:   300 * time.Second,
		MaxTokens: 4096,
	}
}

func defaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:          "localhost:6379",
		ProcessingTTL: 60 * time.Second,
		ResultTTL:     24 * time.Hour,
	}
}

// resolveEnvironment defaults to development; auth shortcuts stay disabled
// unless explicitly opted out of production.
func resolveEnvironment(sys *SystemYAMLConfig) string {
	if sys != nil && sys.Environment != "" {
		return sys.Environment
	}
	return "development"
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}

// resolveAuthConfig resolves auth configuration from system YAML, applying defaults.
func resolveAuthConfig(sys *SystemYAMLConfig) *AuthConfig {
	cfg := &AuthConfig{
		JWTSecretEnv: "HELMSMAN_JWT_SECRET",
		TokenTTL:     24 * time.Hour,
	}

	if sys == nil || sys.Auth == nil {
		return cfg
	}

	a := sys.Auth
	if a.JWTSecretEnv != "" {
		cfg.JWTSecretEnv = a.JWTSecretEnv
	}
	if a.TokenTTL > 0 {
		cfg.TokenTTL = a.TokenTTL
	}

	return cfg
}
