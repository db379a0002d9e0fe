// Package config loads and validates helmsman.yaml configuration.
package config

import (
	"time"
)

// Config is the fully resolved runtime configuration.
type Config struct {
	configDir string

	// DashboardURL is the UI base URL, used for WebSocket origin checks.
	DashboardURL string

	// AllowedWSOrigins are additional WebSocket origin patterns beyond the
	// dashboard URL.
	AllowedWSOrigins []string

	// Environment is "production" or "development". Development relaxes the
	// WebSocket auth handshake to allow query-parameter tokens.
	Environment string

	Auth      *AuthConfig
	Policy    *PolicyConfig
	Queue     *QueueConfig
	Outbox    *OutboxConfig
	Retention *RetentionConfig
	LLM       *LLMConfig
	Redis     *RedisConfig
	Bus       *BusConfig
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// IsProduction reports whether the deployment runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuthConfig controls the WebSocket JWT handshake.
type AuthConfig struct {
	// JWTSecretEnv names the environment variable holding the HMAC secret.
	JWTSecretEnv string `yaml:"jwt_secret_env"`

	// TokenTTL bounds accepted token age beyond the exp claim.
	TokenTTL time.Duration `yaml:"token_ttl"`
}

// PolicyConfig tunes the supervisor decision policy.
type PolicyConfig struct {
	// MaxIterations is the default re-plan budget per mission.
	MaxIterations int `yaml:"max_iterations"`

	// MaxIterationsHardCap bounds per-mission overrides.
	MaxIterationsHardCap int `yaml:"max_iterations_hard_cap"`

	// ApprovalThreshold is the minimum auditor score that ends re-planning
	// even without approval.
	ApprovalThreshold float64 `yaml:"approval_threshold"`
}

// OutboxConfig controls the outbox drain loop.
type OutboxConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
	BatchSize    int           `yaml:"batch_size"`
	MaxRetries   int           `yaml:"max_retries"`
}

// LLMConfig selects and tunes the model provider.
type LLMConfig struct {
	// Provider is "anthropic" or "stub".
	Provider string `yaml:"provider"`

	Model string `yaml:"model"`

	// APIKeyEnv names the environment variable holding the provider key.
	APIKeyEnv string `yaml:"api_key_env"`

	Timeout time.Duration `yaml:"timeout"`

	MaxTokens int `yaml:"max_tokens"`
}

// RedisConfig configures the idempotency store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"-"`
	DB       int    `yaml:"db"`

	// ProcessingTTL bounds how long an in-flight idempotency claim blocks
	// duplicates before it is presumed dead.
	ProcessingTTL time.Duration `yaml:"processing_ttl"`

	// ResultTTL is how long completed responses stay cached for replay.
	ResultTTL time.Duration `yaml:"result_ttl"`
}

// BusConfig tunes the in-process event bus.
type BusConfig struct {
	// QueueSize is the per-subscriber bounded queue depth.
	QueueSize int `yaml:"queue_size"`
}
