package agents

import (
	"context"
	"fmt"

	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

const contextualizerSystem = `You are a research contextualizer. You refine a raw
objective into an unambiguous one and surface the background facts the rest of
the pipeline needs. Respond with a single JSON object:
{"refined_objective": string, "metadata_filters": object, "snippets": [string]}`

// Contextualizer enriches mission context before planning.
type Contextualizer struct {
	client llm.Client
}

func NewContextualizer(client llm.Client) *Contextualizer {
	return &Contextualizer{client: client}
}

func (a *Contextualizer) Name() string { return "contextualizer" }

func (a *Contextualizer) Run(ctx context.Context, s *supervisor.State) (supervisor.Update, error) {
	prompt := missionHeader(s) + "\nRefine the objective and gather relevant context."

	resp, err := a.client.Complete(ctx, llm.Request{System: contextualizerSystem, Prompt: prompt})
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("contextualizer completion failed: %w", err)
	}

	var research models.ResearchResult
	if err := decodeReply(resp.Text, &research); err != nil {
		return supervisor.Update{}, fmt.Errorf("contextualizer: %w", err)
	}
	return supervisor.Update{Research: &research}, nil
}
