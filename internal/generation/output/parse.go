package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// Parse decodes raw generator text into a GenerateItemsOutput.
//
// Stage one is JSON extraction and syntax: models wrap output in prose or
// markdown fences often enough that we take the first complete object between
// '{' and the last '}'. A syntax failure yields exactly one parse error.
// Stage two is schema validation; every violated field is reported, not just
// the first.
func Parse(raw string) ParseResult {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return ParseResult{
			ParseErrors: []ErrorDetail{{Message: "JSON parse failed", Details: err.Error()}},
		}
	}

	var out GenerateItemsOutput
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		return ParseResult{
			ParseErrors: []ErrorDetail{{Message: "JSON parse failed", Details: err.Error()}},
		}
	}

	if errs := checkSchema(out); len(errs) > 0 {
		return ParseResult{ValidationErrors: errs}
	}

	return ParseResult{Success: true, Output: &out}
}

// checkSchema validates the decoded document shape and enums.
func checkSchema(out GenerateItemsOutput) []domain.FieldError {
	var errs []domain.FieldError

	if len(out.Items) < MinItems || len(out.Items) > MaxItems {
		errs = append(errs, domain.FieldError{
			Field:   "items",
			Message: fmt.Sprintf("must contain %d-%d items", MinItems, MaxItems),
			Value:   len(out.Items),
		})
	}

	for i, item := range out.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if item.SID == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".sid", Message: "must not be empty"})
		}
		if strings.TrimSpace(item.Text) == "" {
			errs = append(errs, domain.FieldError{Field: prefix + ".text", Message: "must not be empty"})
		}
		if len(item.Targets) == 0 {
			errs = append(errs, domain.FieldError{Field: prefix + ".targets", Message: "must not be empty"})
		}
		for j, span := range item.Targets {
			if span.Word == "" {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.targets[%d].word", prefix, j),
					Message: "must not be empty",
				})
			}
		}
		if item.SelfEval.PredictedCEFR != "" && !domain.CEFRLevel(item.SelfEval.PredictedCEFR).IsValid() {
			errs = append(errs, domain.FieldError{
				Field:   prefix + ".self_eval.predicted_cefr",
				Message: "must be a CEFR band A1-C2",
				Value:   item.SelfEval.PredictedCEFR,
			})
		}
	}

	// Duplicate sids break downstream correlation.
	seen := make(map[string]bool, len(out.Items))
	for i, item := range out.Items {
		if item.SID == "" {
			continue
		}
		if seen[item.SID] {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("items[%d].sid", i),
				Message: "duplicates an earlier sid",
				Value:   item.SID,
			})
		}
		seen[item.SID] = true
	}

	return errs
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
