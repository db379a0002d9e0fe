package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissionChannel(t *testing.T) {
	assert.Equal(t, "mission:m-1", MissionChannel("m-1"))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(EventTypeMissionCompleted))
	assert.True(t, IsTerminal(EventTypeMissionFailed))
	assert.False(t, IsTerminal(EventTypeMissionCreated))
	assert.False(t, IsTerminal(EventTypeStatusChange))
	assert.False(t, IsTerminal(EnvelopeMissionStatus))
}

func TestDecodeRoutingRoundTrip(t *testing.T) {
	env := MissionEventEnvelope("m-7", 42, EventTypeStatusChange, map[string]any{
		"status": "running",
	})

	data, err := json.Marshal(env)
	require.NoError(t, err)

	routing, err := DecodeRouting(data)
	require.NoError(t, err)
	assert.Equal(t, "m-7", routing.MissionID)
	assert.Equal(t, 42, routing.Sequence)
	assert.Equal(t, EventTypeStatusChange, routing.EventType)
}

func TestDecodeRoutingRejectsGarbage(t *testing.T) {
	_, err := DecodeRouting([]byte("not json"))
	assert.Error(t, err)
}

func TestRunPayloadMapOmitsEmptyFields(t *testing.T) {
	m := RunPayload{RunID: "r-1", Iteration: 2}.Map()
	assert.Equal(t, "r-1", m["run_id"])
	assert.NotContains(t, m, "phase")
	assert.NotContains(t, m, "error")

	m = RunPayload{RunID: "r-1", Iteration: 2, Phase: "plan", Agent: "strategist"}.Map()
	assert.Equal(t, "plan", m["phase"])
	assert.Equal(t, "strategist", m["agent"])
}
