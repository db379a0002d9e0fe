package supervisor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/helmsman-ai/helmsman/pkg/events"
)

// MaxTransitions is the hard recursion limit on graph transitions. It
// protects against pathological cycles even inside the routing policy.
const MaxTransitions = 100

// Agent is a one-shot function over shared state returning a partial update.
// Agents own only transient per-invocation state; everything they share
// flows through the collaboration context.
type Agent interface {
	Name() string
	Run(ctx context.Context, s *State) (Update, error)
}

// EventSink persists brain events. Implemented by the mission service so
// every emission goes through the transactional outbox.
type EventSink interface {
	EmitEvent(ctx context.Context, missionID, eventType string, payload map[string]any) error
}

// Outcome is the terminal result of a graph run.
type Outcome struct {
	// Status is the mission's terminal status: success, partial_success
	// or failed.
	Status string
	// Reason is the terminal outcome detail (approved, loop_stopped,
	// iterations_exhausted, auditor_failed, transition_limit).
	Reason string
	// Result carries the auditor's final response and the execution
	// summary, when present.
	Result map[string]any
	// ErrorMessage is set for failed outcomes.
	ErrorMessage string
}

// Terminal outcome reasons.
const (
	ReasonApproved            = "approved"
	ReasonLoopStopped         = "loop_stopped"
	ReasonIterationsExhausted = "iterations_exhausted"
	ReasonAuditorFailed       = "auditor_failed"
	ReasonTransitionLimit     = "transition_limit"
	ReasonIncomplete          = "incomplete"
)

// Graph is the supervisor state machine. The transition table is static:
// the supervisor policy picks the next agent node, and every agent node
// routes back to the supervisor.
type Graph struct {
	agents map[Node]Agent
	policy Policy
	sink   EventSink
}

// NewGraph builds a graph over the given agent nodes. Each of the five
// agent roles must be present.
func NewGraph(policy Policy, sink EventSink, agents map[Node]Agent) (*Graph, error) {
	for _, node := range []Node{NodeContextualizer, NodeStrategist, NodeArchitect, NodeOperator, NodeAuditor} {
		if agents[node] == nil {
			return nil, fmt.Errorf("missing agent for node %q", node)
		}
	}
	return &Graph{
		agents: agents,
		policy: policy.Normalize(),
		sink:   sink,
	}, nil
}

// Run executes the graph to completion for one mission. The caller holds
// the mission claim, so at most one run is active per mission. Returns an
// error only on context cancellation; agent failures are absorbed into the
// outcome per policy.
func (g *Graph) Run(ctx context.Context, s *State) (*Outcome, error) {
	log := slog.With("mission_id", s.MissionID)
	s.MaxIterations = g.policy.MaxIterations

	g.emit(ctx, s, events.EventTypeRunStarted, "", "", "")

	transitions := 0
	transitionsExhausted := false

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		transitions++
		if transitions > MaxTransitions {
			log.Error("Graph transition limit exceeded", "transitions", transitions)
			transitionsExhausted = true
			break
		}

		next := g.policy.Decide(s)
		if next == NodeEnd {
			s.Visit(NodeEnd, "")
			break
		}

		if next == NodeLoopController {
			g.runLoopController(ctx, s)
			continue
		}

		agent := g.agents[next]
		phase := phaseNames[next]

		g.emit(ctx, s, events.EventTypePhaseStart, phase, agent.Name(), "")

		update, err := agent.Run(ctx, s)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Warn("Agent node failed", "node", next, "agent", agent.Name(), "error", err)
			s.Shared[SharedLastError] = err.Error()
			s.Visit(next, err.Error())
			g.emit(ctx, s, events.EventTypePhaseError, phase, agent.Name(), err.Error())

			// Auditor failure is terminal; everything else is "still
			// needs work" and the caps terminate progression.
			if next == NodeAuditor {
				s.AuditorFailed = true
				break
			}
			continue
		}

		s.Apply(update)

		switch next {
		case NodeContextualizer:
			s.Shared[SharedContextEnriched] = true
			if s.ForceResearch {
				s.Shared[SharedResearchPerformed] = true
			}
		case NodeStrategist:
			recordPlanHash(s)
			if s.LoopDetected {
				log.Warn("Plan loop detected", "iteration", s.Iteration, "reason", s.LoopReason)
			}
		}

		s.Visit(next, "")
		g.emit(ctx, s, events.EventTypePhaseCompleted, phase, agent.Name(), "")
	}

	if transitionsExhausted {
		return &Outcome{
			Status:       StatusFailed,
			Reason:       ReasonTransitionLimit,
			ErrorMessage: fmt.Sprintf("graph exceeded %d transitions", MaxTransitions),
		}, nil
	}
	return g.conclude(s), nil
}

// runLoopController resets the working results, advances the iteration, and
// seeds shared memory with the auditor's feedback so the next strategist run
// can improve on it. A fresh run id keeps UIs from merging runs.
func (g *Graph) runLoopController(ctx context.Context, s *State) {
	feedback := ""
	if s.Audit != nil {
		feedback = s.Audit.Feedback
	}

	s.Plan = nil
	s.Design = nil
	s.Execution = nil
	s.Audit = nil
	s.Iteration++
	if feedback != "" {
		s.Shared[SharedAuditorFeedback] = feedback
	}
	s.Visit(NodeLoopController, "")

	g.emit(ctx, s, events.EventTypeLoopStart, "", "", "")
	g.emit(ctx, s, events.EventTypeRunStarted, "", "", "")
}

// Mission terminal status values, mirrored from the mission schema.
const (
	StatusSuccess        = "success"
	StatusPartialSuccess = "partial_success"
	StatusFailed         = "failed"
)

// conclude derives the terminal outcome from the final state.
func (g *Graph) conclude(s *State) *Outcome {
	switch {
	case s.LoopDetected:
		return &Outcome{
			Status:       StatusFailed,
			Reason:       ReasonLoopStopped,
			ErrorMessage: s.LoopReason,
		}
	case s.AuditorFailed:
		return &Outcome{
			Status:       StatusFailed,
			Reason:       ReasonAuditorFailed,
			ErrorMessage: fmt.Sprintf("%v", s.Shared[SharedLastError]),
		}
	case s.Audit != nil && (s.Audit.Approved || s.Audit.Score >= g.policy.ApprovalThreshold):
		return &Outcome{
			Status: StatusSuccess,
			Reason: ReasonApproved,
			Result: g.resultSummary(s),
		}
	case s.Execution != nil:
		// Usable execution without audit approval: the iteration cap
		// ended progression.
		return &Outcome{
			Status: StatusPartialSuccess,
			Reason: ReasonIterationsExhausted,
			Result: g.resultSummary(s),
		}
	default:
		return &Outcome{
			Status:       StatusFailed,
			Reason:       ReasonIncomplete,
			ErrorMessage: fmt.Sprintf("%v", s.Shared[SharedLastError]),
		}
	}
}

// resultSummary assembles the mission result from the audit and execution.
func (g *Graph) resultSummary(s *State) map[string]any {
	result := make(map[string]any)
	if s.Audit != nil {
		if s.Audit.FinalResponse != "" {
			result["summary"] = s.Audit.FinalResponse
		}
		result["score"] = s.Audit.Score
	}
	if s.Execution != nil {
		result["execution_status"] = s.Execution.Status
	}
	if s.Plan != nil {
		result["strategy"] = s.Plan.StrategyName
	}
	return result
}

// emit persists a brain event through the sink. Emission failures are
// logged, never fatal: the event log is advisory relative to mission state.
func (g *Graph) emit(ctx context.Context, s *State, eventType, phase, agent, errMsg string) {
	if g.sink == nil {
		return
	}
	payload := events.RunPayload{
		RunID:     s.RunID(),
		Iteration: s.Iteration,
		Phase:     phase,
		Agent:     agent,
		Error:     errMsg,
	}
	if err := g.sink.EmitEvent(ctx, s.MissionID, eventType, payload.Map()); err != nil {
		slog.Warn("Failed to emit brain event",
			"mission_id", s.MissionID, "event_type", eventType, "error", err)
	}
}
