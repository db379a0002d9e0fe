package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes missions.
type Worker struct {
	id       string
	nodeID   string
	client   *ent.Client
	config   *config.QueueConfig
	missions *services.MissionService
	executor MissionExecutor
	pool     MissionRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu                sync.RWMutex
	status            WorkerStatus
	currentMissionID  string
	missionsProcessed int
	lastActivity      time.Time
}

// MissionRegistry is the subset of WorkerPool used by Worker for mission registration.
type MissionRegistry interface {
	RegisterMission(missionID string, cancel context.CancelFunc)
	UnregisterMission(missionID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, nodeID string, client *ent.Client, cfg *config.QueueConfig, missions *services.MissionService, executor MissionExecutor, pool MissionRegistry) *Worker {
	return &Worker{
		id:           id,
		nodeID:       nodeID,
		client:       client,
		config:       cfg,
		missions:     missions,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                w.id,
		Status:            string(w.status),
		CurrentMissionID:  w.currentMissionID,
		MissionsProcessed: w.missionsProcessed,
		LastActivity:      w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "node_id", w.nodeID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoMissionsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing mission", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a mission, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Mission.Query().
		Where(mission.StatusEQ(mission.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active missions: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentMissions {
		return ErrAtCapacity
	}

	// 2. Claim next mission
	m, err := w.missions.ClaimNextMission(ctx, w.nodeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return ErrNoMissionsAvailable
		}
		return err
	}

	log := slog.With("mission_id", m.ID, "worker_id", w.id)
	log.Info("Mission claimed")

	w.setStatus(WorkerStatusWorking, m.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create mission context with timeout
	missionCtx, cancelMission := context.WithTimeout(ctx, w.config.MissionTimeout)
	defer cancelMission()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterMission(m.ID, cancelMission)
	defer w.pool.UnregisterMission(m.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(missionCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, m.ID)

	// 6. Execute mission
	result := w.executor.Execute(missionCtx, m)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(missionCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:       mission.StatusFailed,
				Outcome:      "timeout",
				ErrorMessage: fmt.Sprintf("mission timed out after %v", w.config.MissionTimeout),
			}
		case errors.Is(missionCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status:  mission.StatusFailed,
				Outcome: "cancelled",
			}
		default:
			result = &ExecutionResult{
				Status:       mission.StatusFailed,
				Outcome:      "error",
				ErrorMessage: "executor returned nil result",
			}
		}
	}

	// 7. Stop heartbeat before the terminal write
	cancelHeartbeat()

	// 8. Update terminal status (use background context — mission ctx may be cancelled)
	if err := w.completeMission(context.Background(), m.ID, result); err != nil {
		log.Error("Failed to update mission terminal status", "error", err)
		return err
	}

	w.mu.Lock()
	w.missionsProcessed++
	w.mu.Unlock()

	log.Info("Mission processing complete", "status", result.Status, "outcome", result.Outcome)
	return nil
}

// completeMission writes the terminal status. An invalid-transition error
// means the mission was already terminated (API cancel won the race) — not a
// worker failure.
func (w *Worker) completeMission(ctx context.Context, missionID string, result *ExecutionResult) error {
	_, err := w.missions.CompleteMission(ctx, missionID, models.CompleteMissionRequest{
		Status:       string(result.Status),
		Outcome:      result.Outcome,
		Result:       result.Result,
		ErrorMessage: result.ErrorMessage,
	})
	if err != nil && services.IsInvalidTransition(err) {
		slog.Debug("Mission already terminal, skipping completion", "mission_id", missionID)
		return nil
	}
	return err
}

// runHeartbeat periodically refreshes the claim timestamp for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, missionID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Mission.UpdateOneID(missionID).
				SetUpdatedAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "mission_id", missionID, "error", err)
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, missionID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentMissionID = missionID
	w.lastActivity = time.Now()
}
