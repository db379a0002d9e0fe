// Package outbox drains the transactional outbox: entries committed alongside
// mission events are published to PostgreSQL NOTIFY channels, decoupling event
// delivery from the writing transaction. Delivery is at-least-once; consumers
// dedup by sequence.
package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cenkalti/backoff/v4"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/outboxentry"
	"github.com/helmsman-ai/helmsman/pkg/events"
)

// Config controls the outbox drain loop.
type Config struct {
	PollInterval time.Duration
	BatchSize    int
	MaxRetries   int
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
		MaxRetries:   5,
	}
}

// Publisher is the transport the worker drains entries into.
type Publisher interface {
	Notify(ctx context.Context, channel string, payload []byte) error
}

// globalEventTypes lists event types mirrored onto the global missions
// channel for the mission list page.
var globalEventTypes = map[string]bool{
	events.EventTypeMissionCreated:   true,
	events.EventTypeStatusChange:     true,
	events.EventTypeMissionCompleted: true,
	events.EventTypeMissionFailed:    true,
}

// Worker polls pending outbox entries and publishes them. Multiple workers
// (one per node) can drain the same table safely: the claim uses
// FOR UPDATE SKIP LOCKED so entries are processed exactly once per poll.
type Worker struct {
	client    *ent.Client
	publisher Publisher
	config    Config

	cancel context.CancelFunc
	done   chan struct{}
}

// NewWorker creates an outbox worker.
func NewWorker(client *ent.Client, publisher Publisher, cfg Config) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	return &Worker{
		client:    client,
		publisher: publisher,
		config:    cfg,
	}
}

// Start launches the drain loop.
func (w *Worker) Start(ctx context.Context) {
	if w.cancel != nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})

	go w.run(ctx)

	slog.Info("Outbox worker started",
		"poll_interval", w.config.PollInterval,
		"batch_size", w.config.BatchSize)
}

// Stop signals the drain loop to exit and waits for it to finish.
func (w *Worker) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
	slog.Info("Outbox worker stopped")
}

// run keeps the drain loop alive: a panic or persistent error restarts it
// with exponential backoff instead of killing event delivery for the node.
func (w *Worker) run(ctx context.Context) {
	defer close(w.done)

	restart := backoff.NewExponentialBackOff()
	restart.MaxElapsedTime = 0 // retry forever

	for {
		err := w.loop(ctx)
		if ctx.Err() != nil {
			return
		}
		wait := restart.NextBackOff()
		slog.Error("Outbox loop exited, restarting", "error", err, "backoff", wait)
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

func (w *Worker) loop(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("outbox loop panic: %v", r)
		}
	}()

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	for {
		// Drain until the table is empty so bursts don't wait a full tick
		// per batch.
		for {
			n, err := w.DrainBatch(ctx)
			if err != nil {
				return err
			}
			if n < w.config.BatchSize {
				break
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// DrainBatch claims up to BatchSize pending entries and publishes them.
// Returns the number of entries claimed.
func (w *Worker) DrainBatch(ctx context.Context) (int, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entries, err := tx.OutboxEntry.Query().
		Where(outboxentry.StatusEQ(outboxentry.StatusPending)).
		Order(ent.Asc(outboxentry.FieldID)).
		Limit(w.config.BatchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to claim outbox entries: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	// Once an entry for a mission fails, skip the mission's remaining
	// entries this batch so frames stay in sequence order on the wire.
	failedMissions := make(map[string]bool)

	for _, entry := range entries {
		if failedMissions[entry.MissionID] {
			continue
		}
		if err := w.publishEntry(ctx, entry); err != nil {
			failedMissions[entry.MissionID] = true
			slog.Warn("Outbox publish failed",
				"entry_id", entry.ID,
				"mission_id", entry.MissionID,
				"sequence", entry.Sequence,
				"retry_count", entry.RetryCount,
				"error", err)

			update := tx.OutboxEntry.UpdateOne(entry).AddRetryCount(1)
			if entry.RetryCount+1 >= w.config.MaxRetries {
				update.SetStatus(outboxentry.StatusFailed)
			}
			if _, err := update.Save(ctx); err != nil {
				return 0, fmt.Errorf("failed to record outbox failure: %w", err)
			}
			continue
		}

		if _, err := tx.OutboxEntry.UpdateOne(entry).
			SetStatus(outboxentry.StatusProcessed).
			SetProcessedAt(time.Now()).
			Save(ctx); err != nil {
			return 0, fmt.Errorf("failed to mark outbox entry processed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit outbox batch: %w", err)
	}

	return len(entries), nil
}

// publishEntry notifies the mission channel, plus the global channel for
// lifecycle events.
func (w *Worker) publishEntry(ctx context.Context, entry *ent.OutboxEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox payload: %w", err)
	}

	if err := w.publisher.Notify(ctx, events.MissionChannel(entry.MissionID), payload); err != nil {
		return err
	}
	if globalEventTypes[entry.EventType] {
		if err := w.publisher.Notify(ctx, events.GlobalMissionsChannel, payload); err != nil {
			return err
		}
	}
	return nil
}
