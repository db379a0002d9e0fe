// Package models contains request/response types shared across services.
package models

import (
	"time"

	"github.com/helmsman-ai/helmsman/ent"
)

// CreateMissionRequest contains fields for creating a new mission
type CreateMissionRequest struct {
	MissionID      string         `json:"mission_id"`
	Objective      string         `json:"objective"`
	Initiator      string         `json:"initiator,omitempty"`
	Context        map[string]any `json:"context,omitempty"`
	Priority       string         `json:"priority,omitempty"`
	ForceResearch  bool           `json:"force_research,omitempty"`
	IdempotencyKey string         `json:"idempotency_key,omitempty"`
}

// CompleteMissionRequest contains fields for terminating a mission
type CompleteMissionRequest struct {
	Status       string         `json:"status"`  // success, partial_success, failed
	Outcome      string         `json:"outcome"` // e.g. approved, loop_stopped, cancelled
	Result       map[string]any `json:"result,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// MissionFilters contains filtering options for listing missions
type MissionFilters struct {
	Status    string     `json:"status,omitempty"`
	Initiator string     `json:"initiator,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Limit     int        `json:"limit,omitempty"`
	Offset    int        `json:"offset,omitempty"`
}

// MissionListResponse contains a paginated mission list
type MissionListResponse struct {
	Missions   []*ent.Mission `json:"missions"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}
