package config

import (
	"time"

	"github.com/fluentdeck/fluentdeck-backend/internal/service/difficulty"
	"github.com/fluentdeck/fluentdeck-backend/internal/service/review"
)

// Config is the root application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Review     ReviewConfig     `yaml:"review"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	LLM        LLMConfig        `yaml:"llm"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ReviewConfig holds spaced-repetition scheduler parameters.
type ReviewConfig struct {
	LadderRaw       string `yaml:"ladder"             env:"REVIEW_LADDER"            env-default:"1,3,7,14,30,60"`
	NewWordLeadDays int    `yaml:"new_word_lead_days" env:"REVIEW_NEW_WORD_LEAD_DAYS" env-default:"1"`
	Timezone        string `yaml:"timezone"           env:"REVIEW_TIMEZONE"          env-default:"UTC"`

	// Ladder is parsed from LadderRaw during validation.
	Ladder [6]int `yaml:"-" env:"-"`
}

// Params converts the section into scheduler parameters. Only meaningful
// after Validate has parsed the ladder.
func (r ReviewConfig) Params() review.Params {
	return review.Params{
		Ladder:          r.Ladder,
		NewWordLeadDays: r.NewWordLeadDays,
	}
}

// DifficultyConfig holds the feedback controller tuning.
type DifficultyConfig struct {
	Alpha                float64 `yaml:"alpha"                 env:"DIFFICULTY_ALPHA"                 env-default:"0.3"`
	RaiseThreshold       float64 `yaml:"raise_threshold"       env:"DIFFICULTY_RAISE_THRESHOLD"       env-default:"0.6"`
	LowerThreshold       float64 `yaml:"lower_threshold"       env:"DIFFICULTY_LOWER_THRESHOLD"       env-default:"0.6"`
	BiasStep             float64 `yaml:"bias_step"             env:"DIFFICULTY_BIAS_STEP"             env-default:"0.5"`
	CalibrationThreshold float64 `yaml:"calibration_threshold" env:"DIFFICULTY_CALIBRATION_THRESHOLD" env-default:"0.75"`
}

// EWMAParams converts the section into controller tuning.
func (d DifficultyConfig) EWMAParams() difficulty.EWMAParams {
	return difficulty.EWMAParams{
		Alpha:                d.Alpha,
		RaiseThreshold:       d.RaiseThreshold,
		LowerThreshold:       d.LowerThreshold,
		BiasStep:             d.BiasStep,
		CalibrationThreshold: d.CalibrationThreshold,
	}
}

// LLMConfig holds text-generation provider settings.
type LLMConfig struct {
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"     env-required:"true"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-opus-4-6"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"60s"`
	MaxRetries  int           `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"3"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"2048"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.7"`
}
