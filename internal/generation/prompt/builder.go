package prompt

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

// The prompt is assembled from three fixed sections. Structured values are
// JSON-serialized before substitution so targets containing quotes or
// punctuation stay intact; identical params always yield byte-identical text.

const systemSection = `You are a language-learning content writer producing short practice sentences for vocabulary review.

Rules:
- Write natural, self-contained sentences; no numbering, no commentary.
- Every required target word must appear in the output at least once, in any inflected form that still contains the word.
- Match the requested CEFR difficulty band; apply the difficulty bias as a soft nudge within the band.
- Introduce at most the allowed number of vocabulary items above the requested band, and only when incidental vocabulary is allowed.
- Honestly assess your own output: report the CEFR level you actually hit and list every above-band term you used.`

const developerSection = `Output ONLY a valid JSON object matching this exact schema, no markdown fences, no explanations:
{
  "items": [
    {
      "sid": "<opaque id, unique within this response>",
      "text": "<the sentence>",
      "targets": [{"word": "<target>", "begin": <byte offset>, "end": <byte offset>}],
      "self_eval": {
        "predicted_cefr": "<A1|A2|B1|B2|C1|C2>",
        "estimated_new_terms_count": <int>,
        "new_terms": [{"surface": "<term>", "cefr": "<band>", "gloss": "<short gloss>"}],
        "reason": "<optional one-line justification>"
      }
    }
  ]
}
Produce 1-3 items. Spans are byte offsets into text; begin is the first byte and end the last byte of the span, both inclusive, and the span must contain the target word case-insensitively.`

const userSectionTemplate = `Generate practice sentences with these parameters:
- target words: %s
- cefr level: %s
- difficulty bias: %s
- style: %s
- allow incidental (above-level) vocabulary: %s
- max above-level terms for the whole batch: %s
- sentence length range (tokens): %s
- max target words per sentence: %s`

// Build renders the full prompt. Params must have passed ValidateParams;
// Build re-checks and fails rather than emitting a malformed prompt.
func Build(p Params) (string, error) {
	if errs := ValidateParams(p); len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}

	targets := make([]string, len(p.Targets))
	for i, w := range p.Targets {
		targets[i] = domain.NormalizeText(w)
	}

	userSection := fmt.Sprintf(userSectionTemplate,
		mustJSON(targets),
		mustJSON(p.Profile.Level),
		mustJSON(p.Profile.DifficultyBias),
		mustJSON(p.Profile.Style),
		mustJSON(p.Profile.AllowIncidental),
		mustJSON(p.Profile.UnknownBudget),
		mustJSON(p.Constraints.SentenceLengthRange),
		mustJSON(p.Constraints.MaxTargetsPerSentence),
	)

	return strings.Join([]string{systemSection, developerSection, userSection}, "\n\n"), nil
}

// TemplateHash fingerprints the template text (not a filled prompt) so logs
// and analytics can correlate generator output with prompt revisions.
func TemplateHash() string {
	h := sha256.Sum256([]byte(systemSection + "\n" + developerSection + "\n" + userSectionTemplate))
	return hex.EncodeToString(h[:])[:16]
}

// mustJSON serializes a value that cannot fail to marshal (plain strings,
// numbers, bools, and slices thereof).
func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
