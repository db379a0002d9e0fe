package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent/mission"
	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/llm"
	"github.com/helmsman-ai/helmsman/pkg/services"
	testdb "github.com/helmsman-ai/helmsman/test/database"
)

func TestStartMission_MissingLLMCredentials(t *testing.T) {
	o := New(nil, nil, llm.ErrMissingAPIKey)

	_, err := o.StartMission(context.Background(), StartMissionInput{Objective: "anything"})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestStartMission_CreatesMission(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	o := New(missions, llm.NewStubClient(), nil)
	ctx := context.Background()

	m, err := o.StartMission(ctx, StartMissionInput{
		Objective: "summarise the report",
		Initiator: "user-1",
		Priority:  "high",
	})
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, m.Status)
	assert.Equal(t, "summarise the report", m.Objective)
}

func TestStartMission_DuplicateIdempotencyKeyReturnsExisting(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	o := New(missions, llm.NewStubClient(), nil)
	ctx := context.Background()

	first, err := o.StartMission(ctx, StartMissionInput{
		Objective:      "summarise the report",
		IdempotencyKey: "corr-123",
	})
	require.NoError(t, err)

	second, err := o.StartMission(ctx, StartMissionInput{
		Objective:      "summarise the report",
		IdempotencyKey: "corr-123",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	total, err := client.Mission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestStartMission_ValidationErrorPassesThrough(t *testing.T) {
	client := testdb.NewTestClient(t)
	missions := services.NewMissionService(client.Client)
	o := New(missions, llm.NewStubClient(), nil)

	_, err := o.StartMission(context.Background(), StartMissionInput{Objective: ""})
	require.Error(t, err)
	assert.True(t, services.IsValidationError(err))
	assert.False(t, IsDispatchError(err))
}

func TestStreamChat_EnvelopeSequence(t *testing.T) {
	stub := llm.NewStubClient()
	stub.Fallback = "hello there friend"
	o := New(nil, stub, nil)

	out, err := o.StreamChat(context.Background(), ChatRequest{Question: "hi"})
	require.NoError(t, err)

	var types []string
	var deltas, final string
	for env := range out {
		types = append(types, env.Type)
		switch env.Type {
		case events.EnvelopeAssistantDelta:
			deltas += env.Payload["content"].(string)
		case events.EnvelopeAssistantFinal:
			final = env.Payload["content"].(string)
		}
	}

	assert.Equal(t, events.EnvelopeConversationInit, types[0])
	assert.Equal(t, events.EnvelopeStatus, types[1])
	assert.Equal(t, events.EnvelopeComplete, types[len(types)-1])
	assert.Equal(t, "hello there friend", deltas)
	assert.Equal(t, "hello there friend", final)
}

func TestStreamChat_KeepsConversationID(t *testing.T) {
	o := New(nil, llm.NewStubClient(), nil)

	out, err := o.StreamChat(context.Background(), ChatRequest{
		Question:       "hi",
		ConversationID: "conv-1",
	})
	require.NoError(t, err)

	for env := range out {
		require.NotEqual(t, events.EnvelopeConversationInit, env.Type,
			"existing conversations must not be re-initialised")
		if id, ok := env.Payload["conversation_id"]; ok {
			assert.Equal(t, "conv-1", id)
		}
	}
}

func TestStreamChat_CancelledContextClosesStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := New(nil, llm.NewStubClient(), nil)
	out, err := o.StreamChat(ctx, ChatRequest{Question: "hi"})
	require.NoError(t, err)

	// Drain whatever was buffered before cancellation took effect; the
	// channel must close rather than hang.
	for range out {
	}
}
