package queue

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/config"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

// scriptedLLM returns replies keyed by role markers in the system prompt.
func scriptedLLM() *llm.StubClient {
	stub := llm.NewStubClient()
	stub.Fallback = `{"refined_objective": "refined", "snippets": []}`
	return stub
}

func TestGraphExecutor_HappyPath(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	ctx := context.Background()

	m, err := missions.CreateMission(ctx, models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "produce a summary",
	})
	require.NoError(t, err)
	claimed, err := missions.MarkRunning(ctx, m.ID, "node-test")
	require.NoError(t, err)

	stub := scriptedLLM()
	stub.Responses = map[string]string{
		"Produce the plan.": `{"strategy_name": "direct",
			"steps": [{"name": "summarise", "description": "summarise the input"}]}`,
		"Produce the execution design.": `{"approach": "single-pass"}`,
		"Execute every step":            `{"status": "success", "results": [{"name": "summarise", "status": "success"}]}`,
		"Audit it.":                     `{"approved": true, "score": 9.0, "final_response": "done"}`,
	}

	executor := NewGraphExecutor(stub, missions, &config.PolicyConfig{
		MaxIterations:        3,
		MaxIterationsHardCap: 5,
		ApprovalThreshold:    7.0,
	})

	result := executor.Execute(ctx, claimed)
	require.NotNil(t, result)
	assert.Equal(t, mission.StatusSuccess, result.Status)
	assert.Equal(t, "approved", result.Outcome)
	assert.Equal(t, "done", result.Result["summary"])

	// Plan steps were persisted as tasks, with the operator's outcome.
	tasks, err := client.Task.Query().Where(task.MissionIDEQ(m.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "summarise", tasks[0].Name)
	assert.Equal(t, task.StatusSuccess, tasks[0].Status)

	// Brain events reached the stream.
	eventsSvc := services.NewEventService(client.Client)
	all, err := eventsSvc.GetEventsSince(ctx, m.ID, 0)
	require.NoError(t, err)

	var types []string
	for _, e := range all {
		types = append(types, e.EventType)
	}
	assert.Contains(t, types, events.EventTypeRunStarted)
	assert.Contains(t, types, events.EventTypePhaseStart)
	assert.Contains(t, types, events.EventTypePhaseCompleted)
	assert.Contains(t, types, events.EventTypeTaskCompleted)

	// Plan hash history was recorded on the mission row.
	updated, err := missions.GetMission(ctx, m.ID, false)
	require.NoError(t, err)
	assert.Len(t, updated.PlanHashes, 1)
}

func TestGraphExecutor_CancellationMapsToCancelledResult(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := missions.CreateMission(context.Background(), models.CreateMissionRequest{
		MissionID: uuid.New().String(),
		Objective: "cancelled run",
	})
	require.NoError(t, err)
	claimed, err := missions.MarkRunning(context.Background(), m.ID, "node-test")
	require.NoError(t, err)

	executor := NewGraphExecutor(scriptedLLM(), missions, &config.PolicyConfig{
		MaxIterations:        3,
		MaxIterationsHardCap: 5,
		ApprovalThreshold:    7.0,
	})

	result := executor.Execute(ctx, claimed)
	require.NotNil(t, result)
	assert.Equal(t, mission.StatusFailed, result.Status)
	assert.Equal(t, "cancelled", result.Outcome)
}
