package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentdeck/fluentdeck-backend/internal/service/difficulty"
)

func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LLM_API_KEY", "test-key")
}

func TestLoad_Defaults(t *testing.T) {
	validEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, [6]int{1, 3, 7, 14, 30, 60}, cfg.Review.Ladder)
	assert.Equal(t, 1, cfg.Review.NewWordLeadDays)
	assert.Equal(t, "UTC", cfg.Review.Timezone)
	assert.InDelta(t, 0.3, cfg.Difficulty.Alpha, 1e-9)
	assert.InDelta(t, 0.6, cfg.Difficulty.RaiseThreshold, 1e-9)
	assert.Equal(t, "claude-opus-4-6", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	validEnv(t)
	t.Setenv("REVIEW_LADDER", "2,4,8,16,32,64")
	t.Setenv("LLM_TIMEOUT", "90s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, [6]int{2, 4, 8, 16, 32, 64}, cfg.Review.Ladder)
	assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
log:
  level: warn
review:
  ladder: "1,2,3,5,8,13"
llm:
  api_key: file-key
  model: claude-opus-4-6
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("LLM_API_KEY", "x") // registers cleanup
	os.Unsetenv("LLM_API_KEY")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, [6]int{1, 2, 3, 5, 8, 13}, cfg.Review.Ladder)
	assert.Equal(t, "file-key", cfg.LLM.APIKey)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")
	t.Setenv("LLM_API_KEY", "test-key")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_BadLadder(t *testing.T) {
	tests := []struct {
		name   string
		ladder string
	}{
		{"too few rungs", "1,3,7"},
		{"not ascending", "1,3,3,14,30,60"},
		{"negative", "-1,3,7,14,30,60"},
		{"not a number", "1,3,x,14,30,60"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validEnv(t)
			t.Setenv("REVIEW_LADDER", tt.ladder)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_BadTimezone(t *testing.T) {
	validEnv(t)
	t.Setenv("REVIEW_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_LLM(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"relative base url", "LLM_BASE_URL", "api.example.com/v1"},
		{"bad scheme", "LLM_BASE_URL", "ftp://api.example.com"},
		{"zero timeout", "LLM_TIMEOUT", "0s"},
		{"negative retries", "LLM_MAX_RETRIES", "-1"},
		{"zero max tokens", "LLM_MAX_TOKENS", "0"},
		{"temperature out of range", "LLM_TEMPERATURE", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_LLMBaseURLAccepted(t *testing.T) {
	validEnv(t)
	t.Setenv("LLM_BASE_URL", "https://api.example.com/v1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", cfg.LLM.BaseURL)
}

func TestLoadStudy_NoLLMCredentialsRequired(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LLM_API_KEY", "x") // registers cleanup
	os.Unsetenv("LLM_API_KEY")
	t.Setenv("REVIEW_LADDER", "2,4,8,16,32,64")

	cfg, err := LoadStudy()
	require.NoError(t, err)

	assert.Equal(t, [6]int{2, 4, 8, 16, 32, 64}, cfg.Review.Ladder)
	assert.InDelta(t, 0.3, cfg.Difficulty.Alpha, 1e-9)
}

func TestLoadStudy_BadLadderRejected(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("REVIEW_LADDER", "1,2,3")

	_, err := LoadStudy()
	assert.Error(t, err)
}

func TestReviewConfig_Params(t *testing.T) {
	validEnv(t)
	t.Setenv("REVIEW_NEW_WORD_LEAD_DAYS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	params := cfg.Review.Params()
	assert.Equal(t, cfg.Review.Ladder, params.Ladder)
	assert.Equal(t, 2, params.NewWordLeadDays)
}

func TestDifficultyConfig_EWMAParams(t *testing.T) {
	validEnv(t)
	t.Setenv("DIFFICULTY_BIAS_STEP", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	params := cfg.Difficulty.EWMAParams()
	require.NoError(t, difficulty.ValidateEWMAParams(params))
	assert.InDelta(t, 0.25, params.BiasStep, 1e-9)
	assert.InDelta(t, cfg.Difficulty.Alpha, params.Alpha, 1e-9)
}

func TestValidate_BadDifficultyAlpha(t *testing.T) {
	tests := []string{"0", "1", "1.2", "-0.3"}
	for _, alpha := range tests {
		t.Run(alpha, func(t *testing.T) {
			validEnv(t)
			t.Setenv("DIFFICULTY_ALPHA", alpha)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
