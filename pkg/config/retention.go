package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// OutboxRetention is how long drained outbox entries are kept before
	// deletion. Failed entries are kept for the same window for inspection.
	OutboxRetention time.Duration `yaml:"outbox_retention"`

	// EventRetentionDays is how many days a terminal mission's event log is
	// kept before deletion.
	EventRetentionDays int `yaml:"event_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		OutboxRetention:    168 * time.Hour,
		EventRetentionDays: 90,
		CleanupInterval:    12 * time.Hour,
	}
}
