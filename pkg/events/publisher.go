package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// notifyLimit is PostgreSQL's NOTIFY payload cap (8000 bytes) with headroom.
const notifyLimit = 7900

// NotifyPublisher broadcasts marshaled envelopes via pg_notify. It is the
// cross-node leg of the event fabric: the outbox worker calls it after an
// entry is drained, and every node's NotifyListener republishes onto its
// local bus.
type NotifyPublisher struct {
	db *sql.DB
}

// NewNotifyPublisher creates a publisher over the shared database handle.
func NewNotifyPublisher(db *sql.DB) *NotifyPublisher {
	return &NotifyPublisher{db: db}
}

// Notify broadcasts a marshaled envelope on a channel. Oversized payloads
// are replaced by a truncation envelope carrying only routing fields —
// clients refetch the full event through the REST event log.
func (p *NotifyPublisher) Notify(ctx context.Context, channel string, payload []byte) error {
	body, err := truncateIfNeeded(payload)
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, body); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload as-is when it fits within the NOTIFY
// limit, otherwise a minimal truncation envelope with routing fields only.
func truncateIfNeeded(payload []byte) (string, error) {
	if len(payload) <= notifyLimit {
		return string(payload), nil
	}

	var frame struct {
		Type    string          `json:"type"`
		Payload EnvelopeRouting `json:"payload"`
	}
	if err := json.Unmarshal(payload, &frame); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated, err := json.Marshal(map[string]any{
		"type": frame.Type,
		"payload": map[string]any{
			"event_type": frame.Payload.EventType,
			"mission_id": frame.Payload.MissionID,
			"sequence":   frame.Payload.Sequence,
			"truncated":  true,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncated), nil
}
