// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/missionevent"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/pkg/config"
)

// Service periodically enforces retention policies:
//   - Purges drained and dead-lettered outbox entries past their window
//   - Removes event logs of long-terminal missions
//
// All operations are idempotent and safe to run from multiple nodes.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		config: cfg,
		client: client,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"outbox_retention", s.config.OutboxRetention,
		"event_retention_days", s.config.EventRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOutbox(ctx)
	s.purgeOldEventLogs(ctx)
}

func (s *Service) purgeOutbox(_ context.Context) {
	count, err := s.PurgeOutbox(context.Background())
	if err != nil {
		slog.Error("Retention: outbox purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged outbox entries", "count", count)
	}
}

func (s *Service) purgeOldEventLogs(_ context.Context) {
	count, err := s.PurgeOldEventLogs(context.Background())
	if err != nil {
		slog.Error("Retention: event log purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged mission event logs", "count", count)
	}
}

// PurgeOutbox deletes processed and failed outbox entries older than the
// retention window. Pending entries are never touched.
func (s *Service) PurgeOutbox(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.config.OutboxRetention)

	writeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	count, err := s.client.OutboxEntry.Delete().
		Where(
			outboxentry.StatusIn(outboxentry.StatusProcessed, outboxentry.StatusFailed),
			outboxentry.CreatedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge outbox entries: %w", err)
	}

	return count, nil
}

// PurgeOldEventLogs deletes event logs of missions that reached a terminal
// status before the retention window. Mission rows themselves are kept.
func (s *Service) PurgeOldEventLogs(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.config.EventRetentionDays)

	writeCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	ids, err := s.client.Mission.Query().
		Where(
			mission.StatusIn(mission.StatusSuccess, mission.StatusPartialSuccess, mission.StatusFailed),
			mission.CompletedAtLT(cutoff),
		).
		IDs(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to find expired missions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	count, err := s.client.MissionEvent.Delete().
		Where(missionevent.MissionIDIn(ids...)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge mission events: %w", err)
	}

	return count, nil
}
