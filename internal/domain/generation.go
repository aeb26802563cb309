package domain

import (
	"github.com/google/uuid"
)

// Target word count bounds for one generation request.
const (
	MinTargets = 1
	MaxTargets = 8
)

// MinSentenceLength is the smallest allowed lower bound for the requested
// sentence length range, in whitespace-delimited tokens.
const MinSentenceLength = 12

// TargetSpan locates one required target word inside a generated sentence.
// Begin and End are byte offsets into Text; the substring must contain the
// target word case-insensitively.
type TargetSpan struct {
	Word  string `json:"word"`
	Begin int    `json:"begin"`
	End   int    `json:"end"`
}

// NewTerm is one above-level vocabulary item the generator claims to have
// introduced.
type NewTerm struct {
	Surface string `json:"surface"`
	CEFR    string `json:"cefr"`
	Gloss   string `json:"gloss"`
}

// SelfEval is the generator's own assessment of its output. All values are
// self-reported and advisory; nothing downstream treats them as ground truth.
type SelfEval struct {
	PredictedCEFR          string    `json:"predicted_cefr"`
	EstimatedNewTermsCount int       `json:"estimated_new_terms_count"`
	NewTerms               []NewTerm `json:"new_terms"`
	Reason                 string    `json:"reason,omitempty"`
}

// GeneratedItem is one generated sentence with its target spans and self
// evaluation.
type GeneratedItem struct {
	SID      string       `json:"sid"`
	Text     string       `json:"text"`
	Targets  []TargetSpan `json:"targets"`
	SelfEval SelfEval     `json:"self_eval"`
}

// PendingBatch records a generated batch's self-estimated novelty until the
// user's ratings settle how many of its words were actually unknown. The
// self-eval is advisory; only the user's UNKNOWN ratings count as ground
// truth for calibration.
type PendingBatch struct {
	BatchID   uuid.UUID
	UserID    uuid.UUID
	Words     []string
	Estimated int
}

// GenerationConstraints bound the shape of requested content.
type GenerationConstraints struct {
	SentenceLengthRange   [2]int
	MaxTargetsPerSentence int
}

// DefaultConstraints returns the caller-overridable generation defaults.
func DefaultConstraints() GenerationConstraints {
	return GenerationConstraints{
		SentenceLengthRange:   [2]int{12, 22},
		MaxTargetsPerSentence: 2,
	}
}
