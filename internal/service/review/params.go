// Package review implements the per-word spaced-repetition scheduler.
// All functions are pure: state in, state out, no I/O and no panics.
package review

import (
	"fmt"
	"strconv"
	"strings"
)

// LadderSize is the number of rungs on the interval ladder, one per
// familiarity level.
const LadderSize = 6

// NewWordPriority is the fixed score assigned to words that have never been
// scheduled, so that brand-new items always surface first.
const NewWordPriority = 1000.0

// Params holds scheduler configuration.
type Params struct {
	// Ladder maps post-review familiarity to an interval in days.
	Ladder [LadderSize]int
	// NewWordLeadDays is how soon a freshly initialized word comes due.
	NewWordLeadDays int
}

// DefaultParams returns the standard interval ladder.
func DefaultParams() Params {
	return Params{
		Ladder:          [LadderSize]int{1, 3, 7, 14, 30, 60},
		NewWordLeadDays: 1,
	}
}

// ParseLadder parses a comma-separated list of day counts (e.g. "1,3,7,14,30,60")
// into an interval ladder. Exactly LadderSize strictly ascending positive
// values are required.
func ParseLadder(raw string) ([LadderSize]int, error) {
	var ladder [LadderSize]int

	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != LadderSize {
		return ladder, fmt.Errorf("expected %d intervals, got %d", LadderSize, len(parts))
	}

	prev := 0
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return ladder, fmt.Errorf("invalid interval %q: %w", p, err)
		}
		if v <= prev {
			return ladder, fmt.Errorf("intervals must be positive and ascending, got %d after %d", v, prev)
		}
		ladder[i] = v
		prev = v
	}

	return ladder, nil
}
