package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/difficulty"
)

// SubmitFeedback feeds one session-level difficulty signal through the
// controller and persists the adjusted profile and controller state.
func (s *Service) SubmitFeedback(ctx context.Context, userID uuid.UUID, feedback domain.Feedback) (difficulty.Adjustment, error) {
	if !feedback.IsValid() {
		return difficulty.Adjustment{}, fmt.Errorf("%w: unknown feedback %q", domain.ErrValidation, feedback)
	}

	profile, state, err := s.loadProfile(ctx, userID)
	if err != nil {
		return difficulty.Adjustment{}, err
	}

	adj := difficulty.AdjustLevelAndBudget(s.ewmaParams, profile, feedback, state)
	if err := s.saveProfile(ctx, userID, adj); err != nil {
		return difficulty.Adjustment{}, err
	}

	if adj.Changed {
		s.log.InfoContext(ctx, "difficulty adjusted",
			slog.String("feedback", string(feedback)),
			slog.String("level", string(adj.Profile.Level)),
			slog.Float64("bias", adj.Profile.DifficultyBias),
		)
	}
	return adj, nil
}

// loadProfile fetches the profile and controller state, defaulting both for
// first-time users.
func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID) (domain.Profile, difficulty.State, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p := domain.DefaultProfile()
		profile = &p
	case err != nil:
		return domain.Profile{}, difficulty.State{}, fmt.Errorf("get profile: %w", err)
	}

	state, err := s.profiles.GetDifficultyState(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		state = &difficulty.State{}
	case err != nil:
		return domain.Profile{}, difficulty.State{}, fmt.Errorf("get difficulty state: %w", err)
	}

	return *profile, *state, nil
}

func (s *Service) saveProfile(ctx context.Context, userID uuid.UUID, adj difficulty.Adjustment) error {
	if err := s.profiles.SaveProfile(ctx, userID, adj.Profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := s.profiles.SaveDifficultyState(ctx, userID, adj.State); err != nil {
		return fmt.Errorf("save difficulty state: %w", err)
	}
	return nil
}
