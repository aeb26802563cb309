package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fluentdeck/fluentdeck-backend/internal/service/review"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Review.validate(); err != nil {
		return fmt.Errorf("review: %w", err)
	}
	if err := c.Difficulty.validate(); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}

func (r *ReviewConfig) validate() error {
	ladder, err := review.ParseLadder(r.LadderRaw)
	if err != nil {
		return fmt.Errorf("ladder: %w", err)
	}
	r.Ladder = ladder

	if r.NewWordLeadDays < 0 {
		return fmt.Errorf("new_word_lead_days must be >= 0 (got %d)", r.NewWordLeadDays)
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	return nil
}

func (d *DifficultyConfig) validate() error {
	if d.Alpha <= 0 || d.Alpha >= 1 {
		return fmt.Errorf("alpha must be in (0,1) (got %v)", d.Alpha)
	}
	if d.RaiseThreshold < 0 || d.LowerThreshold < 0 {
		return fmt.Errorf("thresholds must be >= 0 (got %v, %v)", d.RaiseThreshold, d.LowerThreshold)
	}
	if d.BiasStep < 0 {
		return fmt.Errorf("bias_step must be >= 0 (got %v)", d.BiasStep)
	}
	if d.CalibrationThreshold < 0 {
		return fmt.Errorf("calibration_threshold must be >= 0 (got %v)", d.CalibrationThreshold)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if l.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.BaseURL != "" {
		u, err := url.Parse(l.BaseURL)
		if err != nil {
			return fmt.Errorf("base_url %q: %w", l.BaseURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
			return fmt.Errorf("base_url %q must be an absolute http(s) URL", l.BaseURL)
		}
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", l.MaxRetries)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.Temperature < 0 || l.Temperature > 1 {
		return fmt.Errorf("temperature must be in [0,1] (got %v)", l.Temperature)
	}
	return nil
}
