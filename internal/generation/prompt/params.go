// Package prompt builds the deterministic generation request text sent to
// the LLM.
package prompt

import (
	"fmt"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// Params is everything a generation prompt depends on.
type Params struct {
	Targets     []string
	Profile     domain.Profile
	Constraints domain.GenerationConstraints
}

// ValidateParams checks every field and reports all violations, not just the
// first one.
func ValidateParams(p Params) []domain.FieldError {
	var errs []domain.FieldError

	if len(p.Targets) < domain.MinTargets || len(p.Targets) > domain.MaxTargets {
		errs = append(errs, domain.FieldError{
			Field:   "targets",
			Message: fmt.Sprintf("must contain %d-%d words", domain.MinTargets, domain.MaxTargets),
			Value:   len(p.Targets),
		})
	}
	for i, w := range p.Targets {
		if domain.NormalizeText(w) == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("targets[%d]", i),
				Message: "must not be blank",
				Value:   w,
			})
		}
	}

	if !p.Profile.Level.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "profile.level",
			Message: "must be a CEFR band A1-C2",
			Value:   string(p.Profile.Level),
		})
	}
	if p.Profile.DifficultyBias < domain.MinDifficultyBias || p.Profile.DifficultyBias > domain.MaxDifficultyBias {
		errs = append(errs, domain.FieldError{
			Field:   "profile.difficulty_bias",
			Message: fmt.Sprintf("must be in [%v,%v]", domain.MinDifficultyBias, domain.MaxDifficultyBias),
			Value:   p.Profile.DifficultyBias,
		})
	}
	if p.Profile.UnknownBudget < domain.MinUnknownBudget || p.Profile.UnknownBudget > domain.MaxUnknownBudget {
		errs = append(errs, domain.FieldError{
			Field:   "profile.unknown_budget",
			Message: fmt.Sprintf("must be in [%d,%d]", domain.MinUnknownBudget, domain.MaxUnknownBudget),
			Value:   p.Profile.UnknownBudget,
		})
	}
	if !p.Profile.Style.IsValid() {
		errs = append(errs, domain.FieldError{
			Field:   "profile.style",
			Message: "must be one of NEUTRAL, NEWS, DIALOG, ACADEMIC",
			Value:   string(p.Profile.Style),
		})
	}

	lo, hi := p.Constraints.SentenceLengthRange[0], p.Constraints.SentenceLengthRange[1]
	if lo < domain.MinSentenceLength {
		errs = append(errs, domain.FieldError{
			Field:   "constraints.sentence_length_range",
			Message: fmt.Sprintf("minimum must be >= %d tokens", domain.MinSentenceLength),
			Value:   lo,
		})
	}
	if hi < lo {
		errs = append(errs, domain.FieldError{
			Field:   "constraints.sentence_length_range",
			Message: "maximum must not be below minimum",
			Value:   hi,
		})
	}
	if p.Constraints.MaxTargetsPerSentence < 1 || p.Constraints.MaxTargetsPerSentence > domain.MaxTargets {
		errs = append(errs, domain.FieldError{
			Field:   "constraints.max_targets_per_sentence",
			Message: fmt.Sprintf("must be in [1,%d]", domain.MaxTargets),
			Value:   p.Constraints.MaxTargetsPerSentence,
		})
	}

	return errs
}
