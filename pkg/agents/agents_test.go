package agents

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/supervisor"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"markdown fence", "Here you go:\n```json\n{\"a\": 1}\n```\n", `{"a": 1}`},
		{"nested braces", `result: {"a": {"b": 2}} trailing`, `{"a": {"b": 2}}`},
		{"brace inside string", `{"a": "}"}`, `{"a": "}"}`},
		{"escaped quote inside string", `{"a": "say \"hi\" {"}`, `{"a": "say \"hi\" {"}`},
		{"no object", "sorry, I cannot", ""},
		{"unbalanced", `{"a": 1`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.text))
		})
	}
}

func TestStrategist_ParsesPlan(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = "```json\n" + `{
		"strategy_name": "decompose",
		"reasoning": "two independent lookups",
		"steps": [
			{"name": "fetch", "description": "fetch the page", "tool_hint": "http_get"},
			{"name": "summarise", "description": "summarise the content"}
		]
	}` + "\n```"

	s := supervisor.NewState("m1", "Summarise X", 3)
	update, err := NewStrategist(stub).Run(context.Background(), s)
	require.NoError(t, err)
	require.NotNil(t, update.Plan)

	assert.Equal(t, "decompose", update.Plan.StrategyName)
	require.Len(t, update.Plan.Steps, 2)
	assert.Equal(t, "fetch", update.Plan.Steps[0].Name)
	assert.Equal(t, "http_get", update.Plan.Steps[0].ToolHint)
}

func TestStrategist_RejectsEmptyPlan(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = `{"strategy_name": "noop", "steps": []}`

	_, err := NewStrategist(stub).Run(context.Background(), supervisor.NewState("m1", "o", 3))
	assert.ErrorContains(t, err, "empty plan")
}

func TestStrategist_FeedbackReachesPrompt(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Responses = map[string]string{
		"try a different source": `{"strategy_name": "revised", "steps": [{"name": "alt", "description": "use the mirror"}]}`,
	}
	stub.Fallback = `{"strategy_name": "original", "steps": [{"name": "fetch", "description": "fetch"}]}`

	s := supervisor.NewState("m1", "o", 3)
	s.Shared[supervisor.SharedAuditorFeedback] = "try a different source"

	update, err := NewStrategist(stub).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "revised", update.Plan.StrategyName)
}

func TestContextualizer_ParsesResearch(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = `{"refined_objective": "Summarise example.com's landing page", "snippets": ["snippet one"]}`

	update, err := NewContextualizer(stub).Run(context.Background(), supervisor.NewState("m1", "summarise", 3))
	require.NoError(t, err)
	require.NotNil(t, update.Research)
	assert.Equal(t, "Summarise example.com's landing page", update.Research.RefinedObjective)
	assert.Equal(t, []string{"snippet one"}, update.Research.Snippets)
}

func TestArchitect_ParsesDesign(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = `{"approach": "sequential", "retries": 2}`

	s := supervisor.NewState("m1", "o", 3)
	s.Plan = &models.Plan{StrategyName: "t", Steps: []models.PlanStep{{Name: "a", Description: "a"}}}

	update, err := NewArchitect(stub).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "sequential", update.Design["approach"])
}

func TestOperator_DerivesStatusWhenOmitted(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = `{"results": [
		{"name": "fetch", "status": "success"},
		{"name": "summarise", "status": "failure", "error": "timeout"}
	]}`

	s := supervisor.NewState("m1", "o", 3)
	s.Plan = &models.Plan{Steps: []models.PlanStep{{Name: "fetch"}, {Name: "summarise"}}}

	update, err := NewOperator(stub).Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionStatusPartialFailure, update.Execution.Status)
}

func TestAuditor_ParsesVerdict(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = `{"approved": true, "score": 8.5, "final_response": "Here is the summary."}`

	s := supervisor.NewState("m1", "o", 3)
	s.Execution = &models.ExecutionResult{Status: models.ExecutionStatusSuccess}

	update, err := NewAuditor(stub).Run(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, update.Audit.Approved)
	assert.InDelta(t, 8.5, update.Audit.Score, 0.001)
}

func TestAuditor_RejectsOutOfRangeScore(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = `{"approved": true, "score": 42}`

	s := supervisor.NewState("m1", "o", 3)
	s.Execution = &models.ExecutionResult{}

	_, err := NewAuditor(stub).Run(context.Background(), s)
	assert.ErrorContains(t, err, "out of range")
}

func TestSet_CoversAllNodes(t *testing.T) {
	set := Set(llm.NewStubClient())
	for _, node := range []supervisor.Node{
		supervisor.NodeContextualizer,
		supervisor.NodeStrategist,
		supervisor.NodeArchitect,
		supervisor.NodeOperator,
		supervisor.NodeAuditor,
	} {
		assert.Contains(t, set, node)
	}
}
