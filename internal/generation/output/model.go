// Package output parses and validates generator responses. Parsing returns a
// tagged result instead of an error so callers can distinguish JSON-syntax
// failures from schema violations, and business validation separates hard
// errors from warnings so borderline content is not discarded unnecessarily.
package output

import (
	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// Item count bounds for one generation response.
const (
	MinItems = 1
	MaxItems = 3
)

// GenerateItemsOutput is the top-level JSON document produced by the LLM.
type GenerateItemsOutput struct {
	Items []domain.GeneratedItem `json:"items"`
}

// ErrorDetail describes a non-field-specific failure (e.g. JSON syntax).
type ErrorDetail struct {
	Message string
	Details string
}

// ParseResult is the tagged outcome of decoding raw generator text.
// Exactly one of ParseErrors or ValidationErrors is populated on failure.
type ParseResult struct {
	Success          bool
	Output           *GenerateItemsOutput
	ParseErrors      []ErrorDetail
	ValidationErrors []domain.FieldError
}

// Report is the outcome of business-level validation of parsed items.
type Report struct {
	IsValid  bool
	Errors   []string
	Warnings []string
	// Coverage is matched/total over the requested target words.
	Coverage float64
}

// BudgetCheck is the advisory comparison of self-reported novelty against the
// profile's unknown-term budget.
type BudgetCheck struct {
	IsWithinBudget bool
	EstimatedCount int
	// Confidence is always "medium": the count is self-reported by the
	// generator, never independently verified.
	Confidence string
}
