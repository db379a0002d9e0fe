package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

func TestPolicy_Normalize(t *testing.T) {
	tests := []struct {
		name          string
		in            Policy
		wantIter      int
		wantThreshold float64
	}{
		{"zero value gets defaults", Policy{}, DefaultMaxIterations, DefaultApprovalThreshold},
		{"above hard cap is clamped", Policy{MaxIterations: 9, ApprovalThreshold: 8}, HardMaxIterations, 8},
		{"legal values pass through", Policy{MaxIterations: 2, ApprovalThreshold: 6.5}, 2, 6.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantIter, got.MaxIterations)
			assert.Equal(t, tt.wantThreshold, got.ApprovalThreshold)
		})
	}
}

func TestPolicy_Decide(t *testing.T) {
	policy := Policy{MaxIterations: 3, ApprovalThreshold: 7.0}

	enriched := func(s *State) *State {
		s.Shared[SharedContextEnriched] = true
		return s
	}
	plan := &models.Plan{Steps: []models.PlanStep{{Name: "step-1"}}}
	execution := &models.ExecutionResult{Status: models.ExecutionStatusSuccess}

	tests := []struct {
		name  string
		state *State
		want  Node
	}{
		{
			name:  "fresh state routes to contextualizer",
			state: NewState("m1", "objective", 3),
			want:  NodeContextualizer,
		},
		{
			name: "force research before regular enrichment",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.ForceResearch = true
				return s
			}(),
			want: NodeContextualizer,
		},
		{
			name:  "enriched but no plan routes to strategist",
			state: enriched(NewState("m1", "o", 3)),
			want:  NodeStrategist,
		},
		{
			name: "plan without design routes to architect",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.Plan = plan
				return s
			}(),
			want: NodeArchitect,
		},
		{
			name: "design without execution routes to operator",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.Plan = plan
				s.Design = map[string]any{"layout": "flat"}
				return s
			}(),
			want: NodeOperator,
		},
		{
			name: "execution without audit routes to auditor",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.Plan = plan
				s.Design = map[string]any{}
				s.Execution = execution
				return s
			}(),
			want: NodeAuditor,
		},
		{
			name: "rejected audit under cap routes to loop controller",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.Plan = plan
				s.Design = map[string]any{}
				s.Execution = execution
				s.Audit = &models.AuditResult{Approved: false, Score: 5.0}
				return s
			}(),
			want: NodeLoopController,
		},
		{
			name: "rejected audit at cap ends the run",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.Plan = plan
				s.Design = map[string]any{}
				s.Execution = execution
				s.Audit = &models.AuditResult{Approved: false, Score: 5.0}
				s.Iteration = 3
				return s
			}(),
			want: NodeEnd,
		},
		{
			name: "score at threshold ends despite rejection",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.Plan = plan
				s.Design = map[string]any{}
				s.Execution = execution
				s.Audit = &models.AuditResult{Approved: false, Score: 7.0}
				return s
			}(),
			want: NodeEnd,
		},
		{
			name: "approved audit ends the run",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.Plan = plan
				s.Design = map[string]any{}
				s.Execution = execution
				s.Audit = &models.AuditResult{Approved: true, Score: 9.0}
				return s
			}(),
			want: NodeEnd,
		},
		{
			name: "loop without audit routes to auditor first",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.LoopDetected = true
				return s
			}(),
			want: NodeAuditor,
		},
		{
			name: "loop with audit recorded ends",
			state: func() *State {
				s := enriched(NewState("m1", "o", 3))
				s.LoopDetected = true
				s.Audit = &models.AuditResult{Approved: false, Score: 0}
				return s
			}(),
			want: NodeEnd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Decide(tt.state))
		})
	}
}
