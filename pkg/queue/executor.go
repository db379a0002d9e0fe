package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/pkg/agents"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/services"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

// GraphExecutor drives a claimed mission through the supervisor graph.
// Brain events flow to the mission's event stream via the mission service,
// and plans/task results are persisted progressively as agents produce them.
type GraphExecutor struct {
	llm      llm.Client
	missions *services.MissionService
	policy   supervisor.Policy
}

// NewGraphExecutor creates the production mission executor.
func NewGraphExecutor(client llm.Client, missions *services.MissionService, policyCfg *config.PolicyConfig) *GraphExecutor {
	return &GraphExecutor{
		llm:      client,
		missions: missions,
		policy: supervisor.Policy{
			MaxIterations:     policyCfg.MaxIterations,
			ApprovalThreshold: policyCfg.ApprovalThreshold,
		},
	}
}

// Execute runs the cognitive graph for one mission.
func (e *GraphExecutor) Execute(ctx context.Context, m *ent.Mission) *ExecutionResult {
	state := supervisor.NewState(m.ID, m.Objective, e.policy.MaxIterations)
	state.Context = m.Context
	state.ForceResearch = m.ForceResearch
	if m.Priority != nil {
		state.Priority = *m.Priority
	}

	set := agents.Set(e.llm)
	set[supervisor.NodeStrategist] = &planRecorder{
		inner:    set[supervisor.NodeStrategist],
		missions: e.missions,
	}
	set[supervisor.NodeOperator] = &resultRecorder{
		inner:    set[supervisor.NodeOperator],
		missions: e.missions,
	}

	g, err := supervisor.NewGraph(e.policy, e.missions, set)
	if err != nil {
		return &ExecutionResult{
			Status:       mission.StatusFailed,
			Outcome:      "error",
			ErrorMessage: fmt.Sprintf("failed to build supervisor graph: %v", err),
		}
	}

	outcome, err := g.Run(ctx, state)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return &ExecutionResult{
				Status:       mission.StatusFailed,
				Outcome:      "timeout",
				ErrorMessage: "mission timed out",
			}
		case errors.Is(err, context.Canceled):
			return &ExecutionResult{
				Status:  mission.StatusFailed,
				Outcome: "cancelled",
			}
		default:
			return &ExecutionResult{
				Status:       mission.StatusFailed,
				Outcome:      "error",
				ErrorMessage: err.Error(),
			}
		}
	}

	return &ExecutionResult{
		Status:       mission.Status(outcome.Status),
		Outcome:      outcome.Reason,
		Result:       outcome.Result,
		ErrorMessage: outcome.ErrorMessage,
	}
}

// planRecorder persists each plan the strategist produces. Recording is
// best-effort: the run proceeds on the in-memory plan even if the write
// fails.
type planRecorder struct {
	inner    supervisor.Agent
	missions *services.MissionService
}

func (r *planRecorder) Name() string { return r.inner.Name() }

func (r *planRecorder) Run(ctx context.Context, s *supervisor.State) (supervisor.Update, error) {
	update, err := r.inner.Run(ctx, s)
	if err != nil || update.Plan == nil {
		return update, err
	}

	hashes := append(append([]string{}, s.PlanHashes...), supervisor.PlanHash(update.Plan))
	if recErr := r.missions.RecordPlan(ctx, s.MissionID, s.Iteration, update.Plan, hashes); recErr != nil {
		slog.Warn("Failed to persist plan", "mission_id", s.MissionID, "error", recErr)
	}
	return update, nil
}

// resultRecorder persists per-step outcomes the operator reports.
type resultRecorder struct {
	inner    supervisor.Agent
	missions *services.MissionService
}

func (r *resultRecorder) Name() string { return r.inner.Name() }

func (r *resultRecorder) Run(ctx context.Context, s *supervisor.State) (supervisor.Update, error) {
	update, err := r.inner.Run(ctx, s)
	if err != nil || update.Execution == nil {
		return update, err
	}

	for i, res := range update.Execution.Results {
		if recErr := r.missions.RecordTaskResult(ctx, s.MissionID, i, res); recErr != nil {
			slog.Warn("Failed to persist task result",
				"mission_id", s.MissionID,
				"ordinal", i,
				"error", recErr)
		}
	}
	return update, nil
}
