// Package generation orchestrates prompt building, the LLM transport call,
// and response validation into one bounded-retry pipeline.
package generation

import (
	"context"
	"fmt"
)

// CallOptions tune one transport call.
type CallOptions struct {
	MaxTokens     int
	Temperature   float64
	StopSequences []string
}

// Usage reports token accounting when the provider supplies it.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CallResult is the raw outcome of one transport call.
type CallResult struct {
	Text  string
	Usage *Usage
}

// Transport is the injected boundary to the external generator. The
// orchestrator owns all retrying; implementations must not retry internally.
type Transport interface {
	Generate(ctx context.Context, prompt string, opts CallOptions) (*CallResult, error)
}

// TransportError carries enough HTTP/transport detail for retry
// classification. Adapters wrap provider SDK errors into this type.
type TransportError struct {
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("transport timeout: %v", e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("transport status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("transport: %v", e.Err)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }
