// Package orchestrator is the single entry point for starting missions and
// streaming chat responses. Every front-door surface (HTTP handler, chat
// WebSocket) delegates here; the orchestrator never executes mission work
// itself — it hands the mission to the authoritative control plane (the
// mission service + queue) and returns a transient view.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Orchestrator accepts missions and chat requests on behalf of all
// front-door surfaces.
type Orchestrator struct {
	missions *services.MissionService
	llm      llm.Client
	llmErr   error // deferred credential error, surfaced at mission start
}

// New creates an orchestrator. llmErr carries a client construction failure
// (typically a missing API key); it is surfaced as a ConfigurationError when
// a mission is started, not at boot, so read-only surfaces keep working.
func New(missions *services.MissionService, client llm.Client, llmErr error) *Orchestrator {
	return &Orchestrator{
		missions: missions,
		llm:      client,
		llmErr:   llmErr,
	}
}

// StartMissionInput carries everything needed to start a mission.
type StartMissionInput struct {
	Objective      string
	Initiator      string
	Context        map[string]any
	Priority       string
	ForceResearch  bool
	IdempotencyKey string
}

// StartMission creates a mission via the control plane and returns a
// transient view. A duplicate idempotency key returns the existing mission.
func (o *Orchestrator) StartMission(ctx context.Context, in StartMissionInput) (*ent.Mission, error) {
	if err := o.checkLLMCredentials(); err != nil {
		return nil, err
	}

	m, err := o.missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID:      uuid.New().String(),
		Objective:      in.Objective,
		Initiator:      in.Initiator,
		Context:        in.Context,
		Priority:       in.Priority,
		ForceResearch:  in.ForceResearch,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		if services.IsValidationError(err) {
			return nil, err
		}
		return nil, &DispatchError{Err: err}
	}

	slog.Info("Mission accepted",
		"mission_id", m.ID,
		"initiator", in.Initiator)
	return m, nil
}

// CancelMission requests cancellation of a mission through the control plane.
func (o *Orchestrator) CancelMission(ctx context.Context, missionID string) (*ent.Mission, error) {
	return o.missions.CancelMission(ctx, missionID)
}

// checkLLMCredentials fails fast when the model provider is unusable.
func (o *Orchestrator) checkLLMCredentials() error {
	if o.llmErr != nil {
		if errors.Is(o.llmErr, llm.ErrMissingAPIKey) {
			return &ConfigurationError{Detail: "LLM API key is not configured"}
		}
		return &ConfigurationError{Detail: o.llmErr.Error()}
	}
	if o.llm == nil {
		return &ConfigurationError{Detail: "LLM client is not configured"}
	}
	return nil
}
