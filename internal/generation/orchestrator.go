package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/generation/output"
	"github.com/fluentdeck/fluentdeck-backend/internal/generation/prompt"
)

// Retry policy bounds.
const (
	DefaultMaxRetries = 3
	baseBackoff       = 1000 * time.Millisecond
	maxBackoff        = 10000 * time.Millisecond
)

// Request is one generation call: which words to cover and for whom.
type Request struct {
	Targets     []string
	Profile     domain.Profile
	Constraints domain.GenerationConstraints
}

// Metadata summarizes a successful batch.
type Metadata struct {
	BatchID            uuid.UUID
	TotalItems         int
	TargetWordCoverage float64
	PromptTemplate     string
}

// Result is the terminal outcome of a generation call. Every path through
// the orchestrator resolves to one; no exception escapes to the caller.
//
// RetryCount counts full build-call-parse-validate cycles redone after the
// first one. A transport failure consumes a cycle like any other retryable
// failure — there is no separate inner transport retry loop. On exhaustion
// RetryCount equals the configured bound.
type Result struct {
	Success     bool
	Items       []domain.GeneratedItem
	Warnings    []string
	Error       *GenError
	RetryCount  int
	TotalTokens int
	Metadata    Metadata
}

// Options configure an Orchestrator.
type Options struct {
	MaxRetries  int
	MaxTokens   int
	Temperature float64
	// Sleep is swappable for tests; nil means a ctx-aware real sleep.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Orchestrator drives Building -> Calling -> Parsing -> Validating with
// bounded retry and exponential backoff. Stateless across calls; safe for
// concurrent use with distinct requests.
type Orchestrator struct {
	transport Transport
	opts      Options
	log       *slog.Logger
}

// NewOrchestrator wires a transport with retry options. A nil logger is
// replaced with slog.Default().
func NewOrchestrator(transport Transport, opts Options, log *slog.Logger) *Orchestrator {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 2048
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepCtx
	}
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{transport: transport, opts: opts, log: log.With("component", "generation")}
}

// Generate runs the full pipeline for one request. The two suspension points
// (the transport call and the inter-retry backoff) both honor ctx; a
// cancelled context short-circuits further retries.
func (o *Orchestrator) Generate(ctx context.Context, req Request) Result {
	batchID := uuid.New()
	log := o.log.With(slog.String("batch_id", batchID.String()))

	totalTokens := 0
	var lastErr *GenError

	for attempt := 0; ; attempt++ {
		cycle, genErr := o.runCycle(ctx, req)
		totalTokens += cycle.tokens

		if genErr == nil {
			log.InfoContext(ctx, "generation succeeded",
				slog.Int("items", len(cycle.items)),
				slog.Int("retries", attempt),
				slog.Int("total_tokens", totalTokens),
			)
			return Result{
				Success:     true,
				Items:       cycle.items,
				Warnings:    cycle.warnings,
				RetryCount:  attempt,
				TotalTokens: totalTokens,
				Metadata: Metadata{
					BatchID:            batchID,
					TotalItems:         len(cycle.items),
					TargetWordCoverage: cycle.coverage,
					PromptTemplate:     prompt.TemplateHash(),
				},
			}
		}

		lastErr = genErr
		if !genErr.Retryable || attempt >= o.opts.MaxRetries {
			log.WarnContext(ctx, "generation failed",
				slog.String("kind", string(genErr.Kind)),
				slog.Bool("retryable", genErr.Retryable),
				slog.Int("retries", attempt),
			)
			return Result{Success: false, Error: lastErr, RetryCount: attempt, TotalTokens: totalTokens}
		}

		delay := backoffDelay(attempt + 1)
		log.DebugContext(ctx, "retrying generation",
			slog.String("kind", string(genErr.Kind)),
			slog.Duration("backoff", delay),
		)
		if err := o.opts.Sleep(ctx, delay); err != nil {
			cancelled := &GenError{Kind: KindTimeoutError, Retryable: false, Message: "cancelled while backing off", Err: err}
			return Result{Success: false, Error: cancelled, RetryCount: attempt, TotalTokens: totalTokens}
		}
	}
}

// cycleResult is what one successful pipeline pass produces.
type cycleResult struct {
	items    []domain.GeneratedItem
	warnings []string
	coverage float64
	tokens   int
}

// runCycle performs one full Building -> Calling -> Parsing -> Validating
// pass. A validation failure triggers a fresh generation rather than a
// resubmission of the identical output.
func (o *Orchestrator) runCycle(ctx context.Context, req Request) (cycleResult, *GenError) {
	var res cycleResult

	// Building.
	promptText, err := prompt.Build(prompt.Params{
		Targets:     req.Targets,
		Profile:     req.Profile,
		Constraints: req.Constraints,
	})
	if err != nil {
		// Bad params never improve with retry.
		return res, &GenError{Kind: KindValidationError, Retryable: false, Message: "invalid generation request", Err: err}
	}

	// Calling.
	call, err := o.transport.Generate(ctx, promptText, CallOptions{
		MaxTokens:   o.opts.MaxTokens,
		Temperature: o.opts.Temperature,
	})
	if err != nil {
		return res, classifyTransport(err)
	}
	if call.Usage != nil {
		res.tokens = call.Usage.TotalTokens
	}

	// Parsing.
	parsed := output.Parse(call.Text)
	if !parsed.Success {
		if len(parsed.ParseErrors) > 0 {
			return res, &GenError{
				Kind: KindParseError, Retryable: true,
				Message: parsed.ParseErrors[0].Details,
			}
		}
		return res, &GenError{
			Kind: KindParseError, Retryable: true,
			Message: fmt.Sprintf("response schema invalid: %s", fieldErrorSummary(parsed.ValidationErrors)),
		}
	}

	// Validating.
	report := output.Validate(parsed.Output.Items, normalizeTargets(req.Targets), req.Constraints.SentenceLengthRange)
	if !report.IsValid {
		return res, &GenError{
			Kind: KindValidationError, Retryable: true,
			Message: strings.Join(report.Errors, "; "),
		}
	}

	res.items = parsed.Output.Items
	res.coverage = report.Coverage
	res.warnings = report.Warnings

	// Budget overshoot is advisory; surface it as a warning, not a retry.
	if check := output.CheckBudget(*parsed.Output, req.Profile.UnknownBudget); !check.IsWithinBudget {
		res.warnings = append(res.warnings, fmt.Sprintf(
			"self-reported new terms %d exceed budget %d (confidence %s)",
			check.EstimatedCount, req.Profile.UnknownBudget, check.Confidence))
	}

	return res, nil
}

// backoffDelay returns min(1s * 2^(attempt-1), 10s).
func backoffDelay(attempt int) time.Duration {
	d := baseBackoff << (attempt - 1)
	if d > maxBackoff || d <= 0 {
		return maxBackoff
	}
	return d
}

func normalizeTargets(targets []string) []string {
	out := make([]string, len(targets))
	for i, w := range targets {
		out[i] = domain.NormalizeText(w)
	}
	return out
}

func fieldErrorSummary(errs []domain.FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field)
	}
	return strings.Join(parts, ", ")
}

// sleepCtx waits for d or until ctx is done, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
