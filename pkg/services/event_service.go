package services

import (
	"context"
	"fmt"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/missionevent"
)

// EventService reads the persisted mission event log. WebSocket catch-up is
// its main consumer: replaying events since a client's last seen sequence.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves a mission's events with sequence > sinceSeq, in
// sequence order. sinceSeq 0 replays the full stream.
func (s *EventService) GetEventsSince(ctx context.Context, missionID string, sinceSeq int) ([]*ent.MissionEvent, error) {
	evts, err := s.client.MissionEvent.Query().
		Where(
			missionevent.MissionIDEQ(missionID),
			missionevent.SequenceGT(sinceSeq),
		).
		Order(ent.Asc(missionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return evts, nil
}

// LatestSequence returns the highest persisted sequence for a mission, or 0
// when the stream is empty.
func (s *EventService) LatestSequence(ctx context.Context, missionID string) (int, error) {
	last, err := s.client.MissionEvent.Query().
		Where(missionevent.MissionIDEQ(missionID)).
		Order(ent.Desc(missionevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get latest sequence: %w", err)
	}
	return last.Sequence, nil
}

// CleanupMissionEvents removes all events for a mission
func (s *EventService) CleanupMissionEvents(ctx context.Context, missionID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.MissionEvent.Delete().
		Where(missionevent.MissionIDEQ(missionID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup mission events: %w", err)
	}

	return count, nil
}
