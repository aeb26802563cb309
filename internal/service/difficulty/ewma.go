// Package difficulty adapts a user's working level and unknown-term budget
// from noisy feedback signals. Everything here is pure and total: invalid
// inputs are clamped to the nearest boundary and the clamp is reported in the
// result instead of an error.
package difficulty

import (
	"fmt"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// EWMAParams holds the smoothing and trigger configuration of the controller.
type EWMAParams struct {
	// Alpha is the EWMA decay factor in (0,1); higher reacts faster.
	Alpha float64
	// RaiseThreshold triggers an upward adjustment when the smoothed
	// pressure reaches it.
	RaiseThreshold float64
	// LowerThreshold triggers a downward adjustment when the smoothed
	// pressure reaches its negation.
	LowerThreshold float64
	// BiasStep is how much DifficultyBias moves per triggered adjustment.
	BiasStep float64
	// CalibrationThreshold triggers a budget nudge when the smoothed
	// estimation error reaches it (positive: generator under-estimates).
	CalibrationThreshold float64
}

// DefaultEWMAParams returns the tuning used when no explicit configuration is
// supplied. The exact constants are deliberately configuration, not law: they
// were chosen so roughly three consistent signals in a row trigger a change.
func DefaultEWMAParams() EWMAParams {
	return EWMAParams{
		Alpha:                0.3,
		RaiseThreshold:       0.6,
		LowerThreshold:       0.6,
		BiasStep:             0.5,
		CalibrationThreshold: 0.75,
	}
}

// ValidateEWMAParams checks parameter ranges without mutating anything.
func ValidateEWMAParams(p EWMAParams) error {
	if p.Alpha <= 0 || p.Alpha >= 1 {
		return fmt.Errorf("alpha must be in (0,1), got %v", p.Alpha)
	}
	if p.RaiseThreshold < 0 {
		return fmt.Errorf("raise threshold must be >= 0, got %v", p.RaiseThreshold)
	}
	if p.LowerThreshold < 0 {
		return fmt.Errorf("lower threshold must be >= 0, got %v", p.LowerThreshold)
	}
	if p.BiasStep < 0 {
		return fmt.Errorf("bias step must be >= 0, got %v", p.BiasStep)
	}
	if p.CalibrationThreshold < 0 {
		return fmt.Errorf("calibration threshold must be >= 0, got %v", p.CalibrationThreshold)
	}
	return nil
}

// State is the controller's smoothed memory. It is an explicit value threaded
// through calls; there is no process-wide instance. Callers persist it
// alongside the profile.
type State struct {
	// Pressure is the EWMA of feedback signals (-1 too easy .. +1 too hard).
	Pressure float64
	// Samples counts feedback events folded into Pressure.
	Samples int
	// CalibrationError is the EWMA of (observed - estimated) new-term counts.
	CalibrationError float64
	// CalibrationSamples counts calibration events folded in.
	CalibrationSamples int
}

// Adjustment is the result of one controller step.
type Adjustment struct {
	Profile domain.Profile
	State   State
	// Changed reports whether the profile differs from the input.
	Changed bool
	// Clamps lists boundary clamps applied to the inputs, for observability.
	Clamps []string
}

// signalFor maps feedback to its pressure contribution.
func signalFor(feedback domain.Feedback) float64 {
	switch feedback {
	case domain.FeedbackTooEasy:
		return -1
	case domain.FeedbackTooHard:
		return 1
	default:
		return 0
	}
}
