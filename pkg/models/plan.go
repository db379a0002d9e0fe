package models

// PlanStep is a single step in a strategist-produced plan.
type PlanStep struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ToolHint    string         `json:"tool_hint,omitempty"`
	Inputs      map[string]any `json:"inputs,omitempty"`
}

// Plan is the strategist's output: ordered steps plus the strategy that
// produced them.
type Plan struct {
	StrategyName string     `json:"strategy_name"`
	Reasoning    string     `json:"reasoning,omitempty"`
	Steps        []PlanStep `json:"steps"`
}

// Execution status values produced by the operator.
const (
	ExecutionStatusSuccess        = "success"
	ExecutionStatusPartialFailure = "partial_failure"
	ExecutionStatusFailure        = "failure"
)

// StepResult is the outcome of a single executed plan step.
type StepResult struct {
	Name   string         `json:"name"`
	Status string         `json:"status"` // success, failure, skipped
	Result map[string]any `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// ExecutionResult is the operator's output for one run of the plan.
type ExecutionResult struct {
	Status  string       `json:"status"` // success, partial_failure, failure
	Results []StepResult `json:"results"`
}

// AuditResult is the auditor's verdict on an execution.
type AuditResult struct {
	Approved      bool    `json:"approved"`
	Score         float64 `json:"score"`
	Feedback      string  `json:"feedback,omitempty"`
	FinalResponse string  `json:"final_response,omitempty"`
}

// ResearchResult is the contextualizer's output.
type ResearchResult struct {
	RefinedObjective string         `json:"refined_objective,omitempty"`
	MetadataFilters  map[string]any `json:"metadata_filters,omitempty"`
	Snippets         []string       `json:"snippets,omitempty"`
}
