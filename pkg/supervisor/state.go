// Package supervisor implements the cognitive control loop: a state-machine
// graph routing between agent roles, with a single supervisor policy deciding
// transitions and bounded re-planning on auditor feedback.
package supervisor

import (
	"fmt"
	"time"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// Node identifies a vertex in the supervisor graph.
type Node string

// Graph nodes. SupervisorNode is the entry point; every agent node routes
// back to it.
const (
	NodeSupervisor     Node = "supervisor"
	NodeContextualizer Node = "contextualizer"
	NodeStrategist     Node = "strategist"
	NodeArchitect      Node = "architect"
	NodeOperator       Node = "operator"
	NodeAuditor        Node = "auditor"
	NodeLoopController Node = "loop_controller"
	NodeEnd            Node = "end"
)

// Phase names carried on brain events, one per agent node.
var phaseNames = map[Node]string{
	NodeContextualizer: "CONTEXT",
	NodeStrategist:     "PLANNING",
	NodeArchitect:      "DESIGN",
	NodeOperator:       "EXECUTION",
	NodeAuditor:        "AUDIT",
}

// Shared-memory keys with meaning to the supervisor policy.
const (
	SharedContextEnriched   = "context_enriched"
	SharedResearchPerformed = "research_performed"
	SharedAuditorFeedback   = "auditor_feedback"
	SharedLastError         = "last_error"
)

// NodeVisit is one entry in the append-only audit trail of graph traversal.
type NodeVisit struct {
	Node      Node      `json:"node"`
	RunID     string    `json:"run_id"`
	Iteration int       `json:"iteration"`
	Err       string    `json:"error,omitempty"`
	At        time.Time `json:"at"`
}

// State is the shared state carried through the graph. It is owned by a
// single graph run; agents receive it read-only and return partial updates.
type State struct {
	MissionID     string
	Objective     string
	Context       map[string]any
	Constraints   []string
	Priority      string
	ForceResearch bool

	// Shared is the collaboration context: a key→value map updated by each
	// node and scoped to one mission run.
	Shared map[string]any

	Plan      *models.Plan
	Design    map[string]any
	Execution *models.ExecutionResult
	Audit     *models.AuditResult
	Research  *models.ResearchResult

	Iteration     int
	MaxIterations int

	PlanHashes   []string
	LoopDetected bool
	LoopReason   string

	// AuditorFailed marks a terminal auditor error — the mission fails
	// regardless of remaining policy headroom.
	AuditorFailed bool

	Timeline []NodeVisit
}

// NewState builds the initial graph state for a mission run.
func NewState(missionID, objective string, maxIterations int) *State {
	return &State{
		MissionID:     missionID,
		Objective:     objective,
		Shared:        make(map[string]any),
		MaxIterations: maxIterations,
	}
}

// RunID returns the per-iteration run identifier. Each re-plan gets a fresh
// run id so UIs don't merge runs.
func (s *State) RunID() string {
	return fmt.Sprintf("%s:%d", s.MissionID, s.Iteration)
}

// SharedBool reads a boolean flag from the collaboration context.
func (s *State) SharedBool(key string) bool {
	v, ok := s.Shared[key].(bool)
	return ok && v
}

// Visit appends a node visit to the traversal timeline.
func (s *State) Visit(node Node, errMsg string) {
	s.Timeline = append(s.Timeline, NodeVisit{
		Node:      node,
		RunID:     s.RunID(),
		Iteration: s.Iteration,
		Err:       errMsg,
		At:        time.Now(),
	})
}

// Update is a partial state update returned by an agent node. Nil fields
// leave the corresponding state untouched; Shared entries are merged into
// the collaboration context.
type Update struct {
	Plan      *models.Plan
	Design    map[string]any
	Execution *models.ExecutionResult
	Audit     *models.AuditResult
	Research  *models.ResearchResult
	Shared    map[string]any
}

// Apply merges an update into the state.
func (s *State) Apply(u Update) {
	if u.Plan != nil {
		s.Plan = u.Plan
	}
	if u.Design != nil {
		s.Design = u.Design
	}
	if u.Execution != nil {
		s.Execution = u.Execution
	}
	if u.Audit != nil {
		s.Audit = u.Audit
	}
	if u.Research != nil {
		s.Research = u.Research
	}
	for k, v := range u.Shared {
		s.Shared[k] = v
	}
}
