package supervisor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/events"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// scriptedAgent returns canned updates per invocation; the last script entry
// repeats once the script is exhausted.
type scriptedAgent struct {
	name   string
	script []func(s *State) (Update, error)
	calls  int
}

func (a *scriptedAgent) Name() string { return a.name }

func (a *scriptedAgent) Run(_ context.Context, s *State) (Update, error) {
	idx := a.calls
	if idx >= len(a.script) {
		idx = len(a.script) - 1
	}
	a.calls++
	return a.script[idx](s)
}

// recordingSink collects emitted brain events.
type recordingSink struct {
	mu     sync.Mutex
	events []emitted
}

type emitted struct {
	eventType string
	payload   map[string]any
}

func (r *recordingSink) EmitEvent(_ context.Context, _ string, eventType string, payload map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, emitted{eventType, payload})
	return nil
}

func (r *recordingSink) count(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.eventType == eventType {
			n++
		}
	}
	return n
}

func once(f func(s *State) (Update, error)) []func(s *State) (Update, error) {
	return []func(s *State) (Update, error){f}
}

func happyAgents(auditScript []func(s *State) (Update, error), planScript []func(s *State) (Update, error)) map[Node]Agent {
	if planScript == nil {
		planScript = once(func(s *State) (Update, error) {
			return Update{Plan: &models.Plan{
				StrategyName: "direct",
				Steps:        []models.PlanStep{{Name: "summarise", Description: "summarise the input"}},
			}}, nil
		})
	}
	return map[Node]Agent{
		NodeContextualizer: &scriptedAgent{name: "contextualizer", script: once(func(s *State) (Update, error) {
			return Update{Research: &models.ResearchResult{RefinedObjective: s.Objective}}, nil
		})},
		NodeStrategist: &scriptedAgent{name: "strategist", script: planScript},
		NodeArchitect: &scriptedAgent{name: "architect", script: once(func(s *State) (Update, error) {
			return Update{Design: map[string]any{"approach": "single-pass"}}, nil
		})},
		NodeOperator: &scriptedAgent{name: "operator", script: once(func(s *State) (Update, error) {
			return Update{Execution: &models.ExecutionResult{
				Status:  models.ExecutionStatusSuccess,
				Results: []models.StepResult{{Name: "summarise", Status: "success"}},
			}}, nil
		})},
		NodeAuditor: &scriptedAgent{name: "auditor", script: auditScript},
	}
}

func TestGraph_HappyPath(t *testing.T) {
	sink := &recordingSink{}
	agents := happyAgents(once(func(s *State) (Update, error) {
		return Update{Audit: &models.AuditResult{Approved: true, Score: 9.2, FinalResponse: "done"}}, nil
	}), nil)

	g, err := NewGraph(Policy{}, sink, agents)
	require.NoError(t, err)

	s := NewState("m1", "Summarise X", 3)
	outcome, err := g.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, ReasonApproved, outcome.Reason)
	assert.Equal(t, "done", outcome.Result["summary"])

	// One run, five phases, no errors.
	assert.Equal(t, 1, sink.count(events.EventTypeRunStarted))
	assert.Equal(t, 5, sink.count(events.EventTypePhaseStart))
	assert.Equal(t, 5, sink.count(events.EventTypePhaseCompleted))
	assert.Equal(t, 0, sink.count(events.EventTypePhaseError))

	// Phases run in cognitive order.
	var phases []string
	for _, e := range sink.events {
		if e.eventType == events.EventTypePhaseStart {
			phases = append(phases, e.payload["phase"].(string))
		}
	}
	assert.Equal(t, []string{"CONTEXT", "PLANNING", "DESIGN", "EXECUTION", "AUDIT"}, phases)
}

func TestGraph_LoopDetection(t *testing.T) {
	sink := &recordingSink{}
	// Strategist always produces the identical plan; auditor rejects, the
	// loop controller re-plans, and the second identical plan trips loop
	// detection.
	samePlan := once(func(s *State) (Update, error) {
		return Update{Plan: &models.Plan{
			StrategyName: "stubborn",
			Steps:        []models.PlanStep{{Name: "guess", Description: "same guess"}},
		}}, nil
	})
	reject := once(func(s *State) (Update, error) {
		return Update{Audit: &models.AuditResult{Approved: false, Score: 3.0, Feedback: "try harder"}}, nil
	})

	g, err := NewGraph(Policy{MaxIterations: 3}, sink, happyAgents(reject, samePlan))
	require.NoError(t, err)

	s := NewState("m2", "objective", 3)
	outcome, err := g.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, ReasonLoopStopped, outcome.Reason)
	assert.True(t, s.LoopDetected)

	// First run plus the single re-plan that tripped detection.
	assert.Equal(t, 2, sink.count(events.EventTypeRunStarted))
	assert.Equal(t, 1, sink.count(events.EventTypeLoopStart))

	// Auditor feedback was seeded for the re-plan.
	assert.Equal(t, "try harder", s.Shared[SharedAuditorFeedback])
}

func TestGraph_PartialSuccessOnIterationCap(t *testing.T) {
	sink := &recordingSink{}
	// Distinct plans each iteration so loop detection never fires, and an
	// auditor that never approves.
	planNames := []string{"a", "b", "c", "d", "e", "f"}
	planIdx := 0
	plans := once(func(s *State) (Update, error) {
		name := planNames[planIdx%len(planNames)]
		planIdx++
		return Update{Plan: &models.Plan{
			StrategyName: "retry",
			Steps:        []models.PlanStep{{Name: name, Description: "variant " + name}},
		}}, nil
	})
	reject := once(func(s *State) (Update, error) {
		return Update{Audit: &models.AuditResult{Approved: false, Score: 5.5, Feedback: "not enough"}}, nil
	})

	g, err := NewGraph(Policy{MaxIterations: 2}, sink, happyAgents(reject, plans))
	require.NoError(t, err)

	s := NewState("m3", "objective", 2)
	outcome, err := g.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, StatusPartialSuccess, outcome.Status)
	assert.Equal(t, ReasonIterationsExhausted, outcome.Reason)
	assert.Equal(t, 2, s.Iteration)

	// Loop safety: at most max_iterations + 1 runs.
	assert.LessOrEqual(t, sink.count(events.EventTypeRunStarted), 3)
}

func TestGraph_AgentErrorIsAbsorbed(t *testing.T) {
	sink := &recordingSink{}
	// Operator fails once, then succeeds.
	opCalls := 0
	agents := happyAgents(once(func(s *State) (Update, error) {
		return Update{Audit: &models.AuditResult{Approved: true, Score: 8.0, FinalResponse: "ok"}}, nil
	}), nil)
	agents[NodeOperator] = &scriptedAgent{name: "operator", script: []func(s *State) (Update, error){
		func(s *State) (Update, error) {
			opCalls++
			return Update{}, errors.New("tool unavailable")
		},
		func(s *State) (Update, error) {
			opCalls++
			return Update{Execution: &models.ExecutionResult{Status: models.ExecutionStatusSuccess}}, nil
		},
	}}

	g, err := NewGraph(Policy{}, sink, agents)
	require.NoError(t, err)

	s := NewState("m4", "objective", 3)
	outcome, err := g.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, outcome.Status)
	assert.Equal(t, 2, opCalls)
	assert.Equal(t, 1, sink.count(events.EventTypePhaseError))
	assert.Equal(t, "tool unavailable", s.Shared[SharedLastError])
}

func TestGraph_AuditorFailureIsTerminal(t *testing.T) {
	sink := &recordingSink{}
	agents := happyAgents(once(func(s *State) (Update, error) {
		return Update{}, errors.New("scoring backend down")
	}), nil)

	g, err := NewGraph(Policy{}, sink, agents)
	require.NoError(t, err)

	s := NewState("m5", "objective", 3)
	outcome, err := g.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, ReasonAuditorFailed, outcome.Reason)
	assert.Contains(t, outcome.ErrorMessage, "scoring backend down")
}

func TestGraph_CancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	agents := happyAgents(once(func(s *State) (Update, error) {
		return Update{Audit: &models.AuditResult{Approved: true, Score: 9}}, nil
	}), nil)
	// Contextualizer cancels mid-flight, simulating a client disconnect.
	agents[NodeContextualizer] = &scriptedAgent{name: "contextualizer", script: once(func(s *State) (Update, error) {
		cancel()
		return Update{Research: &models.ResearchResult{}}, nil
	})}

	g, err := NewGraph(Policy{}, &recordingSink{}, agents)
	require.NoError(t, err)

	outcome, err := g.Run(ctx, NewState("m6", "objective", 3))
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGraph_TransitionLimit(t *testing.T) {
	sink := &recordingSink{}
	// Contextualizer fails forever, so the policy keeps routing to it
	// until the transition cap trips.
	agents := happyAgents(once(func(s *State) (Update, error) {
		return Update{Audit: &models.AuditResult{Approved: true, Score: 9}}, nil
	}), nil)
	agents[NodeContextualizer] = &scriptedAgent{name: "contextualizer", script: once(func(s *State) (Update, error) {
		return Update{}, errors.New("vector store unreachable")
	})}

	g, err := NewGraph(Policy{}, sink, agents)
	require.NoError(t, err)

	outcome, err := g.Run(context.Background(), NewState("m7", "objective", 3))
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, outcome.Status)
	assert.Equal(t, ReasonTransitionLimit, outcome.Reason)
}

func TestGraph_MissingAgentRejected(t *testing.T) {
	agents := happyAgents(once(func(s *State) (Update, error) {
		return Update{Audit: &models.AuditResult{Approved: true, Score: 9}}, nil
	}), nil)
	delete(agents, NodeAuditor)

	_, err := NewGraph(Policy{}, &recordingSink{}, agents)
	assert.ErrorContains(t, err, "auditor")
}
