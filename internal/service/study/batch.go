package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/difficulty"
)

// CompleteBatch settles a pending batch once the user has rated its words.
// The observed new-term count is the number of batch words the user rated
// UNKNOWN — ground truth against the generator's self-estimate — and the
// (estimated, observed) pair is folded into budget calibration. Per-word
// scheduling happens separately through ReviewWord; ratings here only settle
// calibration.
func (s *Service) CompleteBatch(ctx context.Context, userID, batchID uuid.UUID, ratings map[string]domain.Rating) (difficulty.Adjustment, error) {
	pending, err := s.batches.GetPending(ctx, userID, batchID)
	if err != nil {
		return difficulty.Adjustment{}, fmt.Errorf("get pending batch: %w", err)
	}

	normalized := make(map[string]domain.Rating, len(ratings))
	for word, rating := range ratings {
		normalized[domain.NormalizeText(word)] = rating
	}

	observed := 0
	for _, word := range pending.Words {
		if normalized[word] == domain.RatingUnknown {
			observed++
		}
	}

	profile, state, err := s.loadProfile(ctx, userID)
	if err != nil {
		return difficulty.Adjustment{}, err
	}

	adj := difficulty.CalibrateBudgetEstimation(s.ewmaParams, profile, pending.Estimated, observed, state)
	if err := s.saveProfile(ctx, userID, adj); err != nil {
		return difficulty.Adjustment{}, err
	}
	if err := s.batches.DeletePending(ctx, userID, batchID); err != nil {
		return difficulty.Adjustment{}, fmt.Errorf("delete pending batch: %w", err)
	}

	s.log.InfoContext(ctx, "batch calibrated",
		slog.String("batch_id", batchID.String()),
		slog.Int("estimated_new_terms", pending.Estimated),
		slog.Int("observed_new_terms", observed),
		slog.Bool("budget_changed", adj.Changed),
	)
	return adj, nil
}
