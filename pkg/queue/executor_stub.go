package queue

import (
	"context"
	"sync"
	"time"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/mission"
)

// StubExecutor is a test executor with scriptable behavior.
type StubExecutor struct {
	mu       sync.Mutex
	executed []string

	// Result returned for every mission. Defaults to success/approved.
	Result *ExecutionResult

	// Delay simulates processing time. Cancellation and timeouts interrupt it.
	Delay time.Duration
}

// NewStubExecutor creates a stub that completes missions successfully.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

// Execute records the mission and returns the canned result.
func (e *StubExecutor) Execute(ctx context.Context, m *ent.Mission) *ExecutionResult {
	e.mu.Lock()
	e.executed = append(e.executed, m.ID)
	e.mu.Unlock()

	if e.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil // worker synthesizes the terminal result
		case <-time.After(e.Delay):
		}
	}

	if e.Result != nil {
		res := *e.Result
		return &res
	}
	return &ExecutionResult{
		Status:  mission.StatusSuccess,
		Outcome: "approved",
		Result:  map[string]any{"summary": "stub execution"},
	}
}

// Executed returns the mission IDs processed so far.
func (e *StubExecutor) Executed() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.executed))
	copy(out, e.executed)
	return out
}
