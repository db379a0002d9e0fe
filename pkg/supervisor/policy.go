package supervisor

// Policy holds the supervisor's tunable routing constants. These are policy
// knobs, not semantics — see config for the wired defaults.
type Policy struct {
	// MaxIterations bounds re-planning. Default 3, hard cap 5.
	MaxIterations int
	// ApprovalThreshold is the minimum audit score that counts as approval
	// even when the auditor asks for improvement. Default 7.0.
	ApprovalThreshold float64
}

// Policy bounds.
const (
	DefaultMaxIterations     = 3
	HardMaxIterations        = 5
	DefaultApprovalThreshold = 7.0
)

// Normalize clamps the policy to its legal range.
func (p Policy) Normalize() Policy {
	if p.MaxIterations <= 0 {
		p.MaxIterations = DefaultMaxIterations
	}
	if p.MaxIterations > HardMaxIterations {
		p.MaxIterations = HardMaxIterations
	}
	if p.ApprovalThreshold <= 0 {
		p.ApprovalThreshold = DefaultApprovalThreshold
	}
	return p
}

// Decide is the supervisor routing function: pure over the shared state,
// rules evaluated top to bottom, first match wins.
func (p Policy) Decide(s *State) Node {
	switch {
	case s.LoopDetected && s.Audit == nil:
		// Let the auditor record the failure before ending.
		return NodeAuditor
	case s.LoopDetected:
		return NodeEnd
	case s.ForceResearch && !s.SharedBool(SharedResearchPerformed):
		return NodeContextualizer
	case !s.SharedBool(SharedContextEnriched):
		return NodeContextualizer
	case s.Plan == nil:
		return NodeStrategist
	case s.Design == nil:
		return NodeArchitect
	case s.Execution == nil:
		return NodeOperator
	case s.Audit == nil:
		return NodeAuditor
	case !s.Audit.Approved && s.Iteration < p.MaxIterations && s.Audit.Score < p.ApprovalThreshold:
		return NodeLoopController
	default:
		return NodeEnd
	}
}
