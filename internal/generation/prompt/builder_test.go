package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
)

func validParams() Params {
	return Params{
		Targets:     []string{"happy", "success"},
		Profile:     domain.DefaultProfile(),
		Constraints: domain.DefaultConstraints(),
	}
}

func TestValidateParams_Valid(t *testing.T) {
	assert.Empty(t, ValidateParams(validParams()))
}

func TestValidateParams_ReportsAllViolations(t *testing.T) {
	p := Params{
		Targets: []string{},
		Profile: domain.Profile{
			Level:          "Z9",
			DifficultyBias: 3.0,
			UnknownBudget:  7,
			Style:          "POETRY",
		},
		Constraints: domain.GenerationConstraints{
			SentenceLengthRange:   [2]int{5, 4},
			MaxTargetsPerSentence: 0,
		},
	}

	errs := ValidateParams(p)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{
		"targets",
		"profile.level",
		"profile.difficulty_bias",
		"profile.unknown_budget",
		"profile.style",
		"constraints.sentence_length_range",
		"constraints.max_targets_per_sentence",
	} {
		assert.True(t, fields[want], "missing violation for %s", want)
	}
}

func TestValidateParams_TooManyTargets(t *testing.T) {
	p := validParams()
	p.Targets = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	errs := ValidateParams(p)
	require.Len(t, errs, 1)
	assert.Equal(t, "targets", errs[0].Field)
}

func TestValidateParams_BlankTarget(t *testing.T) {
	p := validParams()
	p.Targets = []string{"fine", "   "}
	errs := ValidateParams(p)
	require.Len(t, errs, 1)
	assert.Equal(t, "targets[1]", errs[0].Field)
}

func TestBuild_Deterministic(t *testing.T) {
	p := validParams()

	a, err := Build(p)
	require.NoError(t, err)
	b, err := Build(p)
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical params must yield byte-identical prompts")
}

func TestBuild_ChangingAnyFieldChangesOutput(t *testing.T) {
	base, err := Build(validParams())
	require.NoError(t, err)

	mutations := map[string]func(*Params){
		"targets": func(p *Params) { p.Targets = []string{"happy", "failure"} },
		"level":   func(p *Params) { p.Profile.Level = domain.CEFRC1 },
		"bias":    func(p *Params) { p.Profile.DifficultyBias = 0.5 },
		"style":   func(p *Params) { p.Profile.Style = domain.StyleNews },
		"budget":  func(p *Params) { p.Profile.UnknownBudget = 3 },
		"length":  func(p *Params) { p.Constraints.SentenceLengthRange = [2]int{14, 20} },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := validParams()
			mutate(&p)
			out, err := Build(p)
			require.NoError(t, err)
			assert.NotEqual(t, base, out, "changing %s must change the prompt", name)
		})
	}
}

func TestBuild_QuotedTargetStaysValid(t *testing.T) {
	p := validParams()
	p.Targets = []string{`rock "n" roll`, "it's"}

	out, err := Build(p)
	require.NoError(t, err)

	assert.Contains(t, out, `rock \"n\" roll`, "quotes must be JSON-escaped")
	assert.Contains(t, out, "it's")
}

func TestBuild_ThreeSections(t *testing.T) {
	out, err := Build(validParams())
	require.NoError(t, err)

	sys := strings.Index(out, "You are a language-learning content writer")
	dev := strings.Index(out, "Output ONLY a valid JSON object")
	usr := strings.Index(out, "Generate practice sentences")
	require.True(t, sys >= 0 && dev >= 0 && usr >= 0, "all three sections present")
	assert.True(t, sys < dev && dev < usr, "sections must keep system/developer/user order")
	assert.Contains(t, out, "target words:")
	assert.Contains(t, out, `"items"`)
}

func TestBuild_SpanContractMatchesValidator(t *testing.T) {
	out, err := Build(validParams())
	require.NoError(t, err)

	// The validator checks Text[Begin:End+1], so the instructions must ask
	// for inclusive end offsets; exclusive-end slice notation would make a
	// sentence-final target draw a spurious position error.
	assert.Contains(t, out, "both inclusive")
	assert.NotContains(t, out, "text[begin:end]")
}

func TestBuild_RejectsInvalidParams(t *testing.T) {
	p := validParams()
	p.Targets = nil

	_, err := Build(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTemplateHash_StableAndShort(t *testing.T) {
	h1 := TemplateHash()
	h2 := TemplateHash()
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 16)
}
