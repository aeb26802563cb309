package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/generation"
)

// GenerateBatch asks the generator for practice sentences covering the given
// target words under the user's current profile. On success the batch is
// recorded as pending: the self-estimated new-term count is held until the
// user's ratings settle the observed count (CompleteBatch), because the
// generator's self-eval is not ground truth for budget calibration.
func (s *Service) GenerateBatch(ctx context.Context, userID uuid.UUID, targets []string) (generation.Result, error) {
	profile, _, err := s.loadProfile(ctx, userID)
	if err != nil {
		return generation.Result{}, err
	}

	result := s.gen.Generate(ctx, generation.Request{
		Targets:     targets,
		Profile:     profile,
		Constraints: s.constraints,
	})
	if !result.Success {
		return result, nil
	}

	pending := domain.PendingBatch{
		BatchID: result.Metadata.BatchID,
		UserID:  userID,
		Words:   batchWords(targets, result.Items),
	}
	for _, item := range result.Items {
		pending.Estimated += item.SelfEval.EstimatedNewTermsCount
	}
	if err := s.batches.SavePending(ctx, pending); err != nil {
		return result, fmt.Errorf("save pending batch: %w", err)
	}

	s.log.InfoContext(ctx, "batch generated",
		slog.String("batch_id", result.Metadata.BatchID.String()),
		slog.Int("items", result.Metadata.TotalItems),
		slog.Int("estimated_new_terms", pending.Estimated),
	)
	return result, nil
}

// batchWords collects the normalized vocabulary a user may rate in a batch:
// the requested targets plus any self-reported above-level terms.
func batchWords(targets []string, items []domain.GeneratedItem) []string {
	seen := make(map[string]bool)
	words := make([]string, 0, len(targets))
	add := func(w string) {
		w = domain.NormalizeText(w)
		if w == "" || seen[w] {
			return
		}
		seen[w] = true
		words = append(words, w)
	}
	for _, t := range targets {
		add(t)
	}
	for _, item := range items {
		for _, term := range item.SelfEval.NewTerms {
			add(term.Surface)
		}
	}
	return words
}
