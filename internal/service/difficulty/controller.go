package difficulty

import (
	"fmt"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// AdjustLevelAndBudget folds one feedback event into the smoothed pressure
// and, when a threshold is crossed, moves the profile: DifficultyBias shifts
// by BiasStep, and once the bias is pinned at its bound the CEFR level steps
// one band in the same direction with the bias re-centered. The pressure
// resets after a triggered adjustment so one sustained streak produces one
// change.
func AdjustLevelAndBudget(params EWMAParams, profile domain.Profile, feedback domain.Feedback, state State) Adjustment {
	adj := Adjustment{Profile: profile, State: state}
	adj.Profile, adj.Clamps = clampProfile(profile)

	signal := signalFor(feedback)
	adj.State.Pressure = params.Alpha*signal + (1-params.Alpha)*state.Pressure
	adj.State.Samples = state.Samples + 1

	switch {
	case adj.State.Pressure >= params.RaiseThreshold:
		if adj.Profile.DifficultyBias < domain.MaxDifficultyBias {
			adj.Profile.DifficultyBias = min(adj.Profile.DifficultyBias+params.BiasStep, domain.MaxDifficultyBias)
		} else {
			adj.Profile.Level = adj.Profile.Level.StepUp()
			adj.Profile.DifficultyBias = 0
		}
		adj.State.Pressure = 0
		adj.Changed = true

	case adj.State.Pressure <= -params.LowerThreshold:
		if adj.Profile.DifficultyBias > domain.MinDifficultyBias {
			adj.Profile.DifficultyBias = max(adj.Profile.DifficultyBias-params.BiasStep, domain.MinDifficultyBias)
		} else {
			adj.Profile.Level = adj.Profile.Level.StepDown()
			adj.Profile.DifficultyBias = 0
		}
		adj.State.Pressure = 0
		adj.Changed = true
	}

	if !adj.Changed {
		adj.Changed = len(adj.Clamps) > 0
	}
	return adj
}

// CalibrateBudgetEstimation folds one (estimated, observed) new-term pair
// into the calibration EWMA and nudges UnknownBudget when the generator's
// self-estimates drift. A generator that keeps under-estimating novelty gets
// its effective budget tightened by one; one that over-estimates gets it
// loosened. The calibration memory resets after a nudge.
func CalibrateBudgetEstimation(params EWMAParams, profile domain.Profile, estimated, observed int, state State) Adjustment {
	adj := Adjustment{Profile: profile, State: state}
	adj.Profile, adj.Clamps = clampProfile(profile)

	if estimated < 0 {
		adj.Clamps = append(adj.Clamps, fmt.Sprintf("estimated count %d clamped to 0", estimated))
		estimated = 0
	}
	if observed < 0 {
		adj.Clamps = append(adj.Clamps, fmt.Sprintf("observed count %d clamped to 0", observed))
		observed = 0
	}

	err := float64(observed - estimated)
	adj.State.CalibrationError = params.Alpha*err + (1-params.Alpha)*state.CalibrationError
	adj.State.CalibrationSamples = state.CalibrationSamples + 1

	switch {
	case adj.State.CalibrationError >= params.CalibrationThreshold:
		// Under-estimating novelty: tighten.
		if adj.Profile.UnknownBudget > domain.MinUnknownBudget {
			adj.Profile.UnknownBudget--
			adj.Changed = true
		}
		adj.State.CalibrationError = 0

	case adj.State.CalibrationError <= -params.CalibrationThreshold:
		// Over-estimating novelty: loosen.
		if adj.Profile.UnknownBudget < domain.MaxUnknownBudget {
			adj.Profile.UnknownBudget++
			adj.Changed = true
		}
		adj.State.CalibrationError = 0
	}

	if !adj.Changed {
		adj.Changed = len(adj.Clamps) > 0
	}
	return adj
}

// clampProfile pulls out-of-range profile fields back to the nearest valid
// boundary and reports every clamp applied.
func clampProfile(p domain.Profile) (domain.Profile, []string) {
	var clamps []string

	if p.DifficultyBias < domain.MinDifficultyBias {
		clamps = append(clamps, fmt.Sprintf("difficulty_bias %v clamped to %v", p.DifficultyBias, domain.MinDifficultyBias))
		p.DifficultyBias = domain.MinDifficultyBias
	} else if p.DifficultyBias > domain.MaxDifficultyBias {
		clamps = append(clamps, fmt.Sprintf("difficulty_bias %v clamped to %v", p.DifficultyBias, domain.MaxDifficultyBias))
		p.DifficultyBias = domain.MaxDifficultyBias
	}

	if p.UnknownBudget < domain.MinUnknownBudget {
		clamps = append(clamps, fmt.Sprintf("unknown_budget %d clamped to %d", p.UnknownBudget, domain.MinUnknownBudget))
		p.UnknownBudget = domain.MinUnknownBudget
	} else if p.UnknownBudget > domain.MaxUnknownBudget {
		clamps = append(clamps, fmt.Sprintf("unknown_budget %d clamped to %d", p.UnknownBudget, domain.MaxUnknownBudget))
		p.UnknownBudget = domain.MaxUnknownBudget
	}

	if !p.Level.IsValid() {
		clamps = append(clamps, fmt.Sprintf("level %q replaced with %s", p.Level, domain.CEFRB1))
		p.Level = domain.CEFRB1
	}
	if !p.Style.IsValid() {
		clamps = append(clamps, fmt.Sprintf("style %q replaced with %s", p.Style, domain.StyleNeutral))
		p.Style = domain.StyleNeutral
	}

	return p, clamps
}
