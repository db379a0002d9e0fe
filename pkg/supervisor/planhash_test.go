package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

func plan(steps ...string) *models.Plan {
	p := &models.Plan{StrategyName: "test"}
	for _, name := range steps {
		p.Steps = append(p.Steps, models.PlanStep{Name: name, Description: "do " + name})
	}
	return p
}

func TestPlanHash_Stable(t *testing.T) {
	a := plan("fetch", "summarise")
	b := plan("fetch", "summarise")
	assert.Equal(t, PlanHash(a), PlanHash(b))

	// Tool hints and inputs are non-semantic for loop detection.
	b.Steps[0].ToolHint = "http_get"
	b.Steps[0].Inputs = map[string]any{"url": "https://example.com"}
	assert.Equal(t, PlanHash(a), PlanHash(b))
}

func TestPlanHash_StepOrderIsSemantic(t *testing.T) {
	assert.NotEqual(t, PlanHash(plan("fetch", "summarise")), PlanHash(plan("summarise", "fetch")))
}

func TestRecordPlanHash_DetectsConsecutiveDuplicate(t *testing.T) {
	s := NewState("m1", "o", 3)

	s.Plan = plan("fetch")
	recordPlanHash(s)
	assert.False(t, s.LoopDetected)
	assert.Len(t, s.PlanHashes, 1)

	s.Plan = plan("fetch", "verify")
	recordPlanHash(s)
	assert.False(t, s.LoopDetected)
	assert.Len(t, s.PlanHashes, 2)

	// Same plan again — loop.
	s.Plan = plan("fetch", "verify")
	recordPlanHash(s)
	assert.True(t, s.LoopDetected)
	assert.NotEmpty(t, s.LoopReason)
	// The duplicate hash is not appended.
	assert.Len(t, s.PlanHashes, 2)
}

func TestRecordPlanHash_NonConsecutiveDuplicateAllowed(t *testing.T) {
	s := NewState("m1", "o", 3)

	s.Plan = plan("fetch")
	recordPlanHash(s)
	s.Plan = plan("verify")
	recordPlanHash(s)
	s.Plan = plan("fetch")
	recordPlanHash(s)

	assert.False(t, s.LoopDetected)
	assert.Len(t, s.PlanHashes, 3)
}
