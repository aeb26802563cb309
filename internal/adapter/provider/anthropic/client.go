// Package anthropic adapts the Anthropic Messages API to the generation
// transport contract. The adapter performs exactly one API call per Generate;
// retry policy belongs to the orchestrator.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fluentdeck/fluentdeck-backend/internal/config"
	"github.com/fluentdeck/fluentdeck-backend/internal/generation"
)

// Client implements generation.Transport over the Anthropic SDK.
type Client struct {
	api     sdk.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// New builds a transport from LLM configuration. SDK-level retries are
// disabled so the orchestrator stays the single owner of retry policy.
func New(cfg config.LLMConfig, log *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		api:     sdk.NewClient(opts...),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     log.With("component", "anthropic"),
	}
}

// Generate sends the prompt as a single user message and returns the raw
// response text. Errors are wrapped in generation.TransportError so the
// orchestrator can classify them.
func (c *Client) Generate(ctx context.Context, prompt string, opts generation.CallOptions) (*generation.CallResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(opts.MaxTokens),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	}
	if opts.Temperature > 0 {
		params.Temperature = sdk.Float(opts.Temperature)
	}
	if len(opts.StopSequences) > 0 {
		params.StopSequences = opts.StopSequences
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		return nil, c.wrapError(ctx, err)
	}
	if len(msg.Content) == 0 {
		return nil, &generation.TransportError{Err: errors.New("empty response from model")}
	}

	result := &generation.CallResult{
		Text: msg.Content[0].Text,
		Usage: &generation.Usage{
			PromptTokens:     int(msg.Usage.InputTokens),
			CompletionTokens: int(msg.Usage.OutputTokens),
			TotalTokens:      int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		},
	}

	c.log.DebugContext(ctx, "model call completed",
		slog.Int("prompt_tokens", result.Usage.PromptTokens),
		slog.Int("completion_tokens", result.Usage.CompletionTokens),
	)
	return result, nil
}

func (c *Client) wrapError(ctx context.Context, err error) error {
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		return &generation.TransportError{
			StatusCode: apierr.StatusCode,
			Err:        fmt.Errorf("anthropic api: %w", err),
		}
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil {
		return &generation.TransportError{
			Timeout: true,
			Err:     fmt.Errorf("anthropic api: %w", err),
		}
	}
	return &generation.TransportError{Err: fmt.Errorf("anthropic api: %w", err)}
}
