package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	nodeID   string
	client   *ent.Client
	config   *config.QueueConfig
	missions *services.MissionService
	executor MissionExecutor
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Mission cancel registry: mission_id → cancel function
	activeMissions map[string]context.CancelFunc
	mu             sync.RWMutex
	started        bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(nodeID string, client *ent.Client, cfg *config.QueueConfig, missions *services.MissionService, executor MissionExecutor) *WorkerPool {
	return &WorkerPool{
		nodeID:         nodeID,
		client:         client,
		config:         cfg,
		missions:       missions,
		executor:       executor,
		workers:        make([]*Worker, 0, cfg.WorkerCount),
		stopCh:         make(chan struct{}),
		activeMissions: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "node_id", p.nodeID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "node_id", p.nodeID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.nodeID, i)
		worker := NewWorker(workerID, p.nodeID, p.client, p.config, p.missions, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current missions before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveMissionIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active missions to complete",
			"count", len(active),
			"mission_ids", active)
	}

	// Signal all workers to stop (they finish current missions)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterMission stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterMission(missionID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeMissions[missionID] = cancel
}

// UnregisterMission removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterMission(missionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeMissions, missionID)
}

// CancelMission triggers context cancellation for a mission on this node.
// Returns true if the mission was found and cancelled on this node.
func (p *WorkerPool) CancelMission(missionID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeMissions[missionID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Mission.Query().
		Where(mission.StatusEQ(mission.StatusPending)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"node_id", p.nodeID,
			"error", errQ)
	}

	activeMissions, errA := p.client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusRunning),
			mission.NodeIDEQ(p.nodeID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active missions for health check",
			"node_id", p.nodeID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeMissions <= p.config.MaxConcurrentMissions && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active missions query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		NodeID:           p.nodeID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveMissions:   activeMissions,
		MaxConcurrent:    p.config.MaxConcurrentMissions,
		QueueDepth:       queueDepth,
		WorkerStats:      workerStats,
		LastOrphanScan:   lastOrphanScan,
		OrphansRecovered: orphansRecovered,
	}
}

// getActiveMissionIDs returns IDs of currently processing missions (for logging).
func (p *WorkerPool) getActiveMissionIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	missions := make([]string, 0, len(p.activeMissions))
	for id := range p.activeMissions {
		missions = append(missions, id)
	}
	return missions
}
