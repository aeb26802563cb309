package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the full application configuration from a YAML file and
// environment variables. Priority: ENV > YAML > defaults (via env-default
// tags). The YAML file path is determined by CONFIG_PATH env (fallback
// "./config.yaml"). If the file does not exist and CONFIG_PATH was not set
// explicitly, configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := readConfig(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// StudyConfig is the subset used by offline tooling that never calls the
// generator, so no LLM credentials are required to load it.
type StudyConfig struct {
	Log        LogConfig        `yaml:"log"`
	Review     ReviewConfig     `yaml:"review"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LoadStudy reads the study-only configuration with the same path and
// precedence rules as Load.
func LoadStudy() (*StudyConfig, error) {
	var cfg StudyConfig
	if err := readConfig(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Review.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: review: %w", err)
	}
	if err := cfg.Difficulty.validate(); err != nil {
		return nil, fmt.Errorf("config: validate: difficulty: %w", err)
	}
	return &cfg, nil
}

func readConfig(cfg any) error {
	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	// No file, load from ENV + defaults only.
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("config: read env: %w", err)
	}
	return nil
}
