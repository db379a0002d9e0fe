package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned missions.
// All nodes run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running missions with stale heartbeats and
// fails them terminally. A stale heartbeat means the owning node died
// mid-run; the mission cannot be resumed because the graph state was
// in-memory only.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusRunning),
			mission.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned missions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned missions", "count", len(orphans))

	recovered := 0
	for _, m := range orphans {
		if err := p.recoverOrphanedMission(ctx, m); err != nil {
			slog.Error("Failed to recover orphaned mission",
				"mission_id", m.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedMission fails a single orphaned mission terminally.
func (p *WorkerPool) recoverOrphanedMission(ctx context.Context, m *ent.Mission) error {
	nodeID := "unknown"
	if m.NodeID != nil {
		nodeID = *m.NodeID
	}

	_, err := p.missions.CompleteMission(ctx, m.ID, models.CompleteMissionRequest{
		Status:       string(mission.StatusFailed),
		Outcome:      "orphaned",
		ErrorMessage: fmt.Sprintf("Orphaned: no heartbeat from node %s since %s", nodeID, m.UpdatedAt.Format(time.RFC3339)),
	})
	if err != nil {
		// Lost the race against another node's scan.
		if services.IsInvalidTransition(err) {
			return nil
		}
		return fmt.Errorf("failed to fail orphaned mission: %w", err)
	}

	slog.Warn("Orphaned mission failed terminally",
		"mission_id", m.ID,
		"old_node_id", nodeID)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of missions owned by this
// node that were running when the node previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, missions *services.MissionService, nodeID string) error {
	orphans, err := client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusRunning),
			mission.NodeIDEQ(nodeID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"node_id", nodeID,
		"count", len(orphans))

	for _, m := range orphans {
		_, err := missions.CompleteMission(ctx, m.ID, models.CompleteMissionRequest{
			Status:       string(mission.StatusFailed),
			Outcome:      "orphaned",
			ErrorMessage: fmt.Sprintf("Orphaned: node %s restarted while mission was running", nodeID),
		})
		if err != nil {
			if services.IsInvalidTransition(err) {
				continue
			}
			slog.Error("Failed to mark startup orphan",
				"mission_id", m.ID,
				"error", err)
			continue
		}

		slog.Info("Startup orphan recovered", "mission_id", m.ID)
	}

	return nil
}
