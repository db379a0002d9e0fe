package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMissionType(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", IntentDefault},
		{"chat", IntentDefault},
		{"CHAT", IntentDefault},
		{"  chat  ", IntentDefault},
		{"mission_complex", IntentMissionComplex},
		{"Mission_Complex", IntentMissionComplex},
		{"deep_analysis", IntentDeepAnalysis},
		{"code_search", IntentCodeSearch},
		{"CODE_SEARCH", IntentCodeSearch},
		{"triage", "TRIAGE"},
		{" custom_flow ", "CUSTOM_FLOW"},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMissionType(tt.raw))
		})
	}
}

func TestIsMissionIntent(t *testing.T) {
	assert.False(t, isMissionIntent(IntentDefault))
	assert.True(t, isMissionIntent(IntentMissionComplex))
	assert.True(t, isMissionIntent(IntentDeepAnalysis))
	assert.True(t, isMissionIntent(IntentCodeSearch))

	// Unknown intents fall back to conversational handling; the canonical
	// name still reaches the orchestrator as context.
	assert.False(t, isMissionIntent("TRIAGE"))
}
