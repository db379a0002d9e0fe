package config

import "time"

// QueueConfig contains mission queue and worker pool configuration.
// These values control how missions are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/node.
	// Each worker independently polls and processes missions.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentMissions is the global limit of concurrent missions being
	// processed across ALL replicas/nodes. Enforced by database COUNT(*) check.
	MaxConcurrentMissions int `yaml:"max_concurrent_missions"`

	// PollInterval is the base interval for checking pending missions.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// MissionTimeout is the maximum time a mission can be processed.
	MissionTimeout time.Duration `yaml:"mission_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active missions
	// to complete during shutdown. Should match MissionTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned missions.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a mission can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentMissions:   5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		MissionTimeout:          15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
	}
}
