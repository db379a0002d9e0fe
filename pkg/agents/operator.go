package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

const operatorSystem = `You are an execution operator. You carry out each step
of a designed plan and report per-step outcomes honestly, including failures.
Respond with a single JSON object:
{"status": "success"|"partial_failure"|"failure",
 "results": [{"name": string, "status": "success"|"failure"|"skipped",
              "result": object, "error": string}]}`

// Operator executes the designed plan step by step.
type Operator struct {
	client llm.Client
}

func NewOperator(client llm.Client) *Operator {
	return &Operator{client: client}
}

func (a *Operator) Name() string { return "operator" }

func (a *Operator) Run(ctx context.Context, s *supervisor.State) (supervisor.Update, error) {
	planJSON, err := json.Marshal(s.Plan)
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("failed to serialize plan: %w", err)
	}
	designJSON, err := json.Marshal(s.Design)
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("failed to serialize design: %w", err)
	}
	prompt := missionHeader(s) + fmt.Sprintf(
		"\nPlan:\n%s\n\nDesign:\n%s\n\nExecute every step and report results.",
		planJSON, designJSON)

	resp, err := a.client.Complete(ctx, llm.Request{System: operatorSystem, Prompt: prompt})
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("operator completion failed: %w", err)
	}

	var exec models.ExecutionResult
	if err := decodeReply(resp.Text, &exec); err != nil {
		return supervisor.Update{}, fmt.Errorf("operator: %w", err)
	}
	if exec.Status == "" {
		exec.Status = deriveExecutionStatus(exec.Results)
	}
	return supervisor.Update{Execution: &exec}, nil
}

// deriveExecutionStatus backfills the overall status from per-step outcomes
// when the model omits it.
func deriveExecutionStatus(results []models.StepResult) string {
	failures := 0
	for _, r := range results {
		if r.Status == "failure" {
			failures++
		}
	}
	switch {
	case len(results) == 0 || failures == len(results):
		return models.ExecutionStatusFailure
	case failures > 0:
		return models.ExecutionStatusPartialFailure
	default:
		return models.ExecutionStatusSuccess
	}
}
