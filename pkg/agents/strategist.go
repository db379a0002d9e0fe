package agents

import (
	"context"
	"fmt"

	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

const strategistSystem = `You are a planning strategist. You decompose an
objective into an ordered list of concrete, executable steps. Respond with a
single JSON object:
{"strategy_name": string, "reasoning": string,
 "steps": [{"name": string, "description": string, "tool_hint": string, "inputs": object}]}
Every step needs a distinct name and an actionable description. If you have
received feedback on a previous attempt, produce a materially different plan.`

// Strategist produces the mission plan.
type Strategist struct {
	client llm.Client
}

func NewStrategist(client llm.Client) *Strategist {
	return &Strategist{client: client}
}

func (a *Strategist) Name() string { return "strategist" }

func (a *Strategist) Run(ctx context.Context, s *supervisor.State) (supervisor.Update, error) {
	prompt := missionHeader(s) + "\nProduce the plan."

	resp, err := a.client.Complete(ctx, llm.Request{System: strategistSystem, Prompt: prompt})
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("strategist completion failed: %w", err)
	}

	var plan models.Plan
	if err := decodeReply(resp.Text, &plan); err != nil {
		return supervisor.Update{}, fmt.Errorf("strategist: %w", err)
	}
	if len(plan.Steps) == 0 {
		return supervisor.Update{}, fmt.Errorf("strategist produced an empty plan")
	}
	return supervisor.Update{Plan: &plan}, nil
}
