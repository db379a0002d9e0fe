package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

const architectSystem = `You are a solution architect. Given a plan, you decide
how its steps map onto available capabilities: sequencing, data flow between
steps, and failure handling. Respond with a single JSON object describing the
design; the shape is yours but it must include an "approach" key.`

// Architect turns a plan into an execution design.
type Architect struct {
	client llm.Client
}

func NewArchitect(client llm.Client) *Architect {
	return &Architect{client: client}
}

func (a *Architect) Name() string { return "architect" }

func (a *Architect) Run(ctx context.Context, s *supervisor.State) (supervisor.Update, error) {
	planJSON, err := json.Marshal(s.Plan)
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("failed to serialize plan: %w", err)
	}
	prompt := missionHeader(s) + fmt.Sprintf("\nPlan:\n%s\n\nProduce the execution design.", planJSON)

	resp, err := a.client.Complete(ctx, llm.Request{System: architectSystem, Prompt: prompt})
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("architect completion failed: %w", err)
	}

	var design map[string]any
	if err := decodeReply(resp.Text, &design); err != nil {
		return supervisor.Update{}, fmt.Errorf("architect: %w", err)
	}
	return supervisor.Update{Design: design}, nil
}
