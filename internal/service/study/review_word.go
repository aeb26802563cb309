package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/review"
)

// ReviewResult reports the outcome of a single word review.
type ReviewResult struct {
	State        domain.WordState
	IntervalDays int
}

// ReviewWord applies one review rating to a word and persists the new state.
// A word the user has never seen is initialized first, then updated.
func (s *Service) ReviewWord(ctx context.Context, userID uuid.UUID, word string, rating domain.Rating, now time.Time) (ReviewResult, error) {
	word = domain.NormalizeText(word)
	if word == "" {
		return ReviewResult{}, fmt.Errorf("%w: word must not be empty", domain.ErrValidation)
	}
	if !rating.IsValid() {
		return ReviewResult{}, fmt.Errorf("%w: unknown rating %q", domain.ErrValidation, rating)
	}

	prev, err := s.words.Get(ctx, userID, word)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		st := review.Initialize(s.reviewParams, userID, word, now)
		prev = &st
	case err != nil:
		return ReviewResult{}, fmt.Errorf("get word state: %w", err)
	}

	next, interval := review.Update(s.reviewParams, *prev, rating, now)
	if err := s.words.Save(ctx, next); err != nil {
		return ReviewResult{}, fmt.Errorf("save word state: %w", err)
	}

	s.log.DebugContext(ctx, "word reviewed",
		slog.String("word", word),
		slog.String("rating", string(rating)),
		slog.Int("familiarity", next.Familiarity),
		slog.Int("interval_days", interval),
	)
	return ReviewResult{State: next, IntervalDays: interval}, nil
}
