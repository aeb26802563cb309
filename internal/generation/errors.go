package generation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a generation failure for retry decisions and logging.
type ErrorKind string

const (
	KindAPIError        ErrorKind = "api_error"
	KindParseError      ErrorKind = "parse_error"
	KindValidationError ErrorKind = "validation_error"
	KindTimeoutError    ErrorKind = "timeout_error"
	KindRateLimitError  ErrorKind = "rate_limit_error"
	KindConfigError     ErrorKind = "config_error"
)

// GenError is a classified generation failure.
type GenError struct {
	Kind      ErrorKind
	Retryable bool
	Message   string
	Err       error
}

func (e *GenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *GenError) Unwrap() error { return e.Err }

// classifyTransport maps a transport failure onto the error taxonomy.
// 5xx, timeouts, and 429 are retryable; other 4xx client errors are not.
func classifyTransport(err error) *GenError {
	var te *TransportError
	if errors.As(err, &te) {
		switch {
		case te.Timeout:
			return &GenError{Kind: KindTimeoutError, Retryable: true, Message: "generator call timed out", Err: err}
		case te.StatusCode == http.StatusTooManyRequests:
			return &GenError{Kind: KindRateLimitError, Retryable: true, Message: "generator rate limited", Err: err}
		case te.StatusCode >= 500:
			return &GenError{Kind: KindAPIError, Retryable: true, Message: "generator server error", Err: err}
		case te.StatusCode >= 400:
			return &GenError{Kind: KindAPIError, Retryable: false, Message: "generator rejected the request", Err: err}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &GenError{Kind: KindTimeoutError, Retryable: true, Message: "generator call timed out", Err: err}
	}
	// Network-level failures with no status are worth another attempt.
	return &GenError{Kind: KindAPIError, Retryable: true, Message: "generator call failed", Err: err}
}
