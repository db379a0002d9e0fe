package api

import (
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
)

// MissionResponse is the client-facing mission view returned by the mission
// endpoints and embedded in mission_status envelopes.
type MissionResponse struct {
	ID           string         `json:"mission_id"`
	Objective    string         `json:"objective"`
	Initiator    string         `json:"initiator,omitempty"`
	Status       string         `json:"status"`
	Outcome      string         `json:"outcome,omitempty"`
	Priority     string         `json:"priority,omitempty"`
	Result       map[string]any `json:"result,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Iteration    int            `json:"iteration"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	Steps        []StepResponse `json:"steps"`
}

// StepResponse is one planned step and its execution state.
type StepResponse struct {
	Ordinal     int            `json:"ordinal"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	ToolHint    string         `json:"tool_hint,omitempty"`
	Status      string         `json:"status"`
	Result      map[string]any `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// newMissionResponse maps a mission row (and its tasks, if loaded) to the
// wire shape. The internal partial_success status is presented as a success
// with outcome "partial_success": clients treat any usable execution as a
// completed mission and read the outcome for the caveat.
func newMissionResponse(m *ent.Mission) *MissionResponse {
	resp := &MissionResponse{
		ID:          m.ID,
		Objective:   m.Objective,
		Status:      string(m.Status),
		Result:      m.Result,
		Iteration:   m.Iteration,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
		Steps:       []StepResponse{},
	}

	if m.Initiator != nil {
		resp.Initiator = *m.Initiator
	}
	if m.Outcome != nil {
		resp.Outcome = *m.Outcome
	}
	if m.Priority != nil {
		resp.Priority = *m.Priority
	}
	if m.ErrorMessage != nil {
		resp.ErrorMessage = *m.ErrorMessage
	}

	if m.Status == mission.StatusPartialSuccess {
		resp.Status = string(mission.StatusSuccess)
		resp.Outcome = string(mission.StatusPartialSuccess)
	}

	for _, task := range m.Edges.Tasks {
		step := StepResponse{
			Ordinal:     task.Ordinal,
			Name:        task.Name,
			Description: task.Description,
			Status:      string(task.Status),
			Result:      task.Result,
		}
		if task.ToolHint != nil {
			step.ToolHint = *task.ToolHint
		}
		if task.ErrorMessage != nil {
			step.Error = *task.ErrorMessage
		}
		resp.Steps = append(resp.Steps, step)
	}

	return resp
}

// MissionEventResponse is one persisted event in the REST event log.
type MissionEventResponse struct {
	Sequence  int            `json:"sequence"`
	EventType string         `json:"event_type"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// MissionListResponse is the paginated mission list.
type MissionListResponse struct {
	Missions   []*MissionResponse `json:"missions"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

// CancelResponse is returned by POST /missions/:id/cancel.
type CancelResponse struct {
	MissionID string `json:"mission_id"`
	Message   string `json:"message"`
}

// HealthCheck is one component's health in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
