package domain

import (
	"time"

	"github.com/google/uuid"
)

// Familiarity bounds for a word's mastery summary.
const (
	MinFamiliarity = 0
	MaxFamiliarity = 5
)

// DefaultWordDifficulty is the informational per-word difficulty a new
// WordState starts with.
const DefaultWordDifficulty = 2.5

// WordState is the per-(user, word) spaced-repetition state. It is created on
// first exposure and mutated only by the review scheduler; callers persist the
// returned value themselves.
type WordState struct {
	UserID      uuid.UUID
	Word        string
	Familiarity int
	Difficulty  float64
	Successes   int
	Lapses      int
	LastSeenAt  *time.Time
	NextDueAt   *time.Time
}

// IsNew reports whether the word has never been scheduled. New words are
// always due.
func (s *WordState) IsNew() bool {
	return s.NextDueAt == nil
}
