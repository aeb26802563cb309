package review

import (
	"fmt"
	"math"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// ValidateState audits a persisted WordState and returns human-readable
// violations. It never fails: out-of-range values are a caller bug that the
// scheduler itself tolerates by clamping, but callers can use this to detect
// corrupted rows before they spread.
func ValidateState(state domain.WordState) []string {
	var problems []string

	if state.Familiarity < domain.MinFamiliarity || state.Familiarity > domain.MaxFamiliarity {
		problems = append(problems, fmt.Sprintf(
			"familiarity %d outside [%d,%d]", state.Familiarity, domain.MinFamiliarity, domain.MaxFamiliarity))
	}
	if state.Successes < 0 {
		problems = append(problems, fmt.Sprintf("successes is negative: %d", state.Successes))
	}
	if state.Lapses < 0 {
		problems = append(problems, fmt.Sprintf("lapses is negative: %d", state.Lapses))
	}
	if math.IsNaN(state.Difficulty) || math.IsInf(state.Difficulty, 0) || state.Difficulty < 0 {
		problems = append(problems, fmt.Sprintf("difficulty is not a sane value: %v", state.Difficulty))
	}
	if state.Word == "" {
		problems = append(problems, "word is empty")
	}
	if state.NextDueAt == nil && state.LastSeenAt != nil {
		problems = append(problems, "word has been reviewed but has no next due date")
	}
	if state.NextDueAt != nil && state.LastSeenAt != nil && state.NextDueAt.Before(*state.LastSeenAt) {
		problems = append(problems, fmt.Sprintf(
			"next due %s precedes last seen %s", state.NextDueAt.Format("2006-01-02"), state.LastSeenAt.Format("2006-01-02")))
	}

	return problems
}
