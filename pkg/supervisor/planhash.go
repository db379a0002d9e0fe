package supervisor

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// PlanHash computes a canonical hash of a plan's step names and
// descriptions. The serialisation is stable against non-semantic ordering:
// step order is preserved (it is semantic) but keys within each step are
// sorted by the JSON encoder, so two plans with the same steps always hash
// identically.
func PlanHash(plan *models.Plan) string {
	steps := make([]map[string]string, len(plan.Steps))
	for i, step := range plan.Steps {
		steps[i] = map[string]string{
			"name":        step.Name,
			"description": step.Description,
		}
	}

	// Maps marshal with sorted keys; errors are impossible for this shape.
	data, _ := json.Marshal(steps)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// recordPlanHash appends the plan's hash to the state history and flags a
// loop when two consecutive plans hash identically.
func recordPlanHash(s *State) {
	if s.Plan == nil {
		return
	}
	hash := PlanHash(s.Plan)
	if n := len(s.PlanHashes); n > 0 && s.PlanHashes[n-1] == hash {
		s.LoopDetected = true
		s.LoopReason = "strategist produced an identical plan twice in a row"
		return
	}
	s.PlanHashes = append(s.PlanHashes, hash)
}
