// Package study composes the pure learning cores (scheduler, difficulty
// controller, generation pipeline) behind injected storage and generator
// ports. It owns no persistence itself.
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/generation"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/difficulty"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/review"
)

// ---------------------------------------------------------------------------
// Consumer-defined ports
// ---------------------------------------------------------------------------

// WordStore persists per-user word scheduling state. Save must serialize
// concurrent writes to the same (user, word) pair; last write wins.
type WordStore interface {
	Get(ctx context.Context, userID uuid.UUID, word string) (*domain.WordState, error)
	Save(ctx context.Context, state domain.WordState) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WordState, error)
}

// ProfileStore persists a user's learning profile and the controller state
// that travels with it.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	SaveProfile(ctx context.Context, userID uuid.UUID, profile domain.Profile) error
	GetDifficultyState(ctx context.Context, userID uuid.UUID) (*difficulty.State, error)
	SaveDifficultyState(ctx context.Context, userID uuid.UUID, state difficulty.State) error
}

// BatchStore keeps generated batches pending until their calibration outcome
// is settled by the user's ratings.
type BatchStore interface {
	SavePending(ctx context.Context, batch domain.PendingBatch) error
	GetPending(ctx context.Context, userID, batchID uuid.UUID) (*domain.PendingBatch, error)
	DeletePending(ctx context.Context, userID, batchID uuid.UUID) error
}

// Generator produces practice items for a set of target words.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) generation.Result
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic.
type Service struct {
	words    WordStore
	profiles ProfileStore
	batches  BatchStore
	gen      Generator
	log      *slog.Logger

	reviewParams review.Params
	ewmaParams   difficulty.EWMAParams
	constraints  domain.GenerationConstraints
	timezone     *time.Location
}

// Options tune the service; zero values fall back to defaults.
type Options struct {
	ReviewParams review.Params
	EWMAParams   difficulty.EWMAParams
	Constraints  domain.GenerationConstraints
	Timezone     *time.Location
}

// NewService creates a new study service.
func NewService(log *slog.Logger, words WordStore, profiles ProfileStore, batches BatchStore, gen Generator, opts Options) *Service {
	if opts.ReviewParams.Ladder == ([review.LadderSize]int{}) {
		opts.ReviewParams = review.DefaultParams()
	}
	if opts.EWMAParams == (difficulty.EWMAParams{}) {
		opts.EWMAParams = difficulty.DefaultEWMAParams()
	}
	if opts.Constraints == (domain.GenerationConstraints{}) {
		opts.Constraints = domain.DefaultConstraints()
	}
	if opts.Timezone == nil {
		opts.Timezone = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		words:        words,
		profiles:     profiles,
		batches:      batches,
		gen:          gen,
		log:          log.With("service", "study"),
		reviewParams: opts.ReviewParams,
		ewmaParams:   opts.EWMAParams,
		constraints:  opts.Constraints,
		timezone:     opts.Timezone,
	}
}
