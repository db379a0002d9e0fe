// Package queue provides mission queue management and processing
// infrastructure: a worker pool that claims pending missions from the
// database and drives them through the supervisor graph.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
)

// Sentinel errors for queue operations.
var (
	// ErrNoMissionsAvailable indicates no pending missions are in the queue.
	ErrNoMissionsAvailable = errors.New("no missions available")

	// ErrAtCapacity indicates the global concurrent mission limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// MissionExecutor is the interface for mission processing.
//
// The executor owns the ENTIRE cognitive run internally: it drives the
// supervisor graph through all phases and re-plan iterations, writing plans,
// task results, and brain events progressively during execution.
// The worker only handles: claiming, heartbeat, and terminal status update.
type MissionExecutor interface {
	Execute(ctx context.Context, m *ent.Mission) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. All intermediate
// state (tasks, events, iteration counters) was already written to the
// database by the executor during processing.
type ExecutionResult struct {
	Status       mission.Status // success, partial_success, failed
	Outcome      string         // approved, loop_stopped, iterations_exhausted, ...
	Result       map[string]any // final result summary (if any)
	ErrorMessage string         // error details (if failed)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	NodeID           string         `json:"node_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveMissions   int            `json:"active_missions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentMissionID  string    `json:"current_mission_id,omitempty"`
	MissionsProcessed int       `json:"missions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
