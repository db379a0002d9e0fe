package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

const auditorSystem = `You are a quality auditor. You score an execution
against its objective on a 0-10 scale and decide whether to approve it.
Respond with a single JSON object:
{"approved": bool, "score": number, "feedback": string, "final_response": string}
Approve only when the objective is genuinely met. When rejecting, feedback
must say concretely what a re-plan should do differently. When approving,
final_response is the user-facing answer.`

// Auditor scores the execution and renders the approval verdict.
type Auditor struct {
	client llm.Client
}

func NewAuditor(client llm.Client) *Auditor {
	return &Auditor{client: client}
}

func (a *Auditor) Name() string { return "auditor" }

func (a *Auditor) Run(ctx context.Context, s *supervisor.State) (supervisor.Update, error) {
	execJSON, err := json.Marshal(s.Execution)
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("failed to serialize execution: %w", err)
	}
	prompt := missionHeader(s) + fmt.Sprintf("\nExecution result:\n%s\n\nAudit it.", execJSON)

	resp, err := a.client.Complete(ctx, llm.Request{System: auditorSystem, Prompt: prompt})
	if err != nil {
		return supervisor.Update{}, fmt.Errorf("auditor completion failed: %w", err)
	}

	var audit models.AuditResult
	if err := decodeReply(resp.Text, &audit); err != nil {
		return supervisor.Update{}, fmt.Errorf("auditor: %w", err)
	}
	if audit.Score < 0 || audit.Score > 10 {
		return supervisor.Update{}, fmt.Errorf("auditor score %v out of range", audit.Score)
	}
	return supervisor.Update{Audit: &audit}, nil
}
