package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// Initialize creates the state for a word on first exposure. New words come
// due after NewWordLeadDays so the initial exposure is confirmed quickly.
func Initialize(params Params, userID uuid.UUID, word string, now time.Time) domain.WordState {
	due := now.AddDate(0, 0, params.NewWordLeadDays)
	return domain.WordState{
		UserID:      userID,
		Word:        domain.NormalizeText(word),
		Familiarity: domain.MinFamiliarity,
		Difficulty:  domain.DefaultWordDifficulty,
		NextDueAt:   &due,
	}
}

// Update applies one review to a word's state and returns the next state
// together with the scheduled interval in days.
//
// Familiarity transitions, clamped to [MinFamiliarity, MaxFamiliarity]:
//
//	AGAIN   -> familiarity-1, lapse
//	UNKNOWN -> familiarity=0, lapse
//	HARD    -> unchanged
//	GOOD    -> familiarity+1, success
//	EASY    -> familiarity+1, success; interval taken one rung ahead so that
//	           EASY never shortens the previous interval
//
// Update never fails: negative counters on input are treated as zero and an
// unrecognized rating behaves like HARD.
func Update(params Params, prev domain.WordState, rating domain.Rating, now time.Time) (domain.WordState, int) {
	next := prev
	next.Familiarity = clampFamiliarity(prev.Familiarity)
	next.Successes = max(prev.Successes, 0)
	next.Lapses = max(prev.Lapses, 0)
	if next.Difficulty <= 0 {
		next.Difficulty = domain.DefaultWordDifficulty
	}

	switch rating {
	case domain.RatingAgain:
		next.Familiarity = clampFamiliarity(next.Familiarity - 1)
		next.Lapses++
	case domain.RatingUnknown:
		next.Familiarity = domain.MinFamiliarity
		next.Lapses++
	case domain.RatingHard:
		// Repeat at the current rung.
	case domain.RatingGood:
		next.Familiarity = clampFamiliarity(next.Familiarity + 1)
		next.Successes++
	case domain.RatingEasy:
		next.Familiarity = clampFamiliarity(next.Familiarity + 1)
		next.Successes++
	}

	rung := next.Familiarity
	if rating == domain.RatingEasy {
		rung = clampFamiliarity(rung + 1)
	}
	intervalDays := params.Ladder[rung]

	seen := now
	due := now.AddDate(0, 0, intervalDays)
	next.LastSeenAt = &seen
	next.NextDueAt = &due

	return next, intervalDays
}

func clampFamiliarity(f int) int {
	if f < domain.MinFamiliarity {
		return domain.MinFamiliarity
	}
	if f > domain.MaxFamiliarity {
		return domain.MaxFamiliarity
	}
	return f
}
