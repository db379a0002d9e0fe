package models

import "github.com/helmsman-ai/helmsman/ent"

// AppendEventRequest contains fields for appending a mission event.
// The sequence is assigned by the service inside the producing transaction.
type AppendEventRequest struct {
	MissionID string         `json:"mission_id"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// EventsResponse contains the ordered event log for a mission
type EventsResponse struct {
	Events []*ent.MissionEvent `json:"events"`
}
