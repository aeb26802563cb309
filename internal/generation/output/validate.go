package output

import (
	"fmt"
	"strings"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// Validate runs the business-level checks on parsed items: target coverage,
// span position correctness, sentence length, and self-eval consistency.
// Length undershoot is a warning rather than an error so otherwise-valid
// short sentences survive.
func Validate(items []domain.GeneratedItem, targetWords []string, lengthRange [2]int) Report {
	report := Report{}

	// Target coverage across the concatenation of all sentences.
	var all strings.Builder
	for _, item := range items {
		all.WriteString(item.Text)
		all.WriteString(" ")
	}
	concatenated := all.String()

	matched := 0
	for _, word := range targetWords {
		if domain.ContainsWord(concatenated, word) {
			matched++
			continue
		}
		report.Errors = append(report.Errors, fmt.Sprintf("target word %q does not appear in any sentence", word))
	}
	if len(targetWords) > 0 {
		report.Coverage = float64(matched) / float64(len(targetWords))
	}

	for i, item := range items {
		prefix := fmt.Sprintf("item %d (%s)", i, item.SID)

		// Position correctness.
		for _, span := range item.Targets {
			if span.Begin < 0 || span.End < span.Begin || span.End >= len(item.Text) {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"%s: position [%d,%d] for %q is outside the sentence", prefix, span.Begin, span.End, span.Word))
				continue
			}
			if !domain.ContainsWord(item.Text[span.Begin:span.End+1], span.Word) {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"%s: position [%d,%d] does not contain %q", prefix, span.Begin, span.End, span.Word))
			}
		}

		// Length: overshoot is an error, undershoot only a warning.
		tokens := domain.TokenCount(item.Text)
		if tokens > lengthRange[1] {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"%s: %d tokens exceeds requested maximum %d", prefix, tokens, lengthRange[1]))
		} else if tokens < lengthRange[0] {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s: %d tokens is below requested minimum %d", prefix, tokens, lengthRange[0]))
		}

		// Self-eval consistency.
		se := item.SelfEval
		if !domain.CEFRLevel(se.PredictedCEFR).IsValid() {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"%s: predicted_cefr %q is not a CEFR band", prefix, se.PredictedCEFR))
		}
		if se.EstimatedNewTermsCount < 0 {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"%s: estimated_new_terms_count %d is negative", prefix, se.EstimatedNewTermsCount))
		}
		if se.NewTerms != nil && len(se.NewTerms) != se.EstimatedNewTermsCount {
			report.Errors = append(report.Errors, fmt.Sprintf(
				"%s: new_terms has %d entries but estimated_new_terms_count is %d",
				prefix, len(se.NewTerms), se.EstimatedNewTermsCount))
		}
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// CheckBudget sums self-reported new-term counts across items and compares
// against the profile's budget. Informational only — not a gate.
func CheckBudget(out GenerateItemsOutput, unknownBudget int) BudgetCheck {
	total := 0
	for _, item := range out.Items {
		if item.SelfEval.EstimatedNewTermsCount > 0 {
			total += item.SelfEval.EstimatedNewTermsCount
		}
	}
	return BudgetCheck{
		IsWithinBudget: total <= unknownBudget,
		EstimatedCount: total,
		Confidence:     "medium",
	}
}
