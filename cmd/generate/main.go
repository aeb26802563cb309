// Command generate produces one batch of practice sentences for the target
// words given as arguments and prints the validated items as JSON.
//
//	generate [-level B1] [-style NEUTRAL] word [word ...]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	provider "github.com/fluentdeck/fluentdeck-backend/internal/adapter/provider/anthropic"
	"github.com/fluentdeck/fluentdeck-backend/internal/app"
	"github.com/fluentdeck/fluentdeck-backend/internal/config"
	"github.com/fluentdeck/fluentdeck-backend/internal/domain"
	"github.com/fluentdeck/fluentdeck-backend/internal/generation"
)

func main() {
	level := flag.String("level", "", "CEFR level override (A1..C2)")
	style := flag.String("style", "", "style override (NEUTRAL, NEWS, DIALOG, ACADEMIC)")
	flag.Parse()

	targets := flag.Args()
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "usage: generate [-level B1] [-style NEUTRAL] word [word ...]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting", slog.String("version", app.BuildVersion()))

	profile := domain.DefaultProfile()
	if *level != "" {
		profile.Level = domain.CEFRLevel(*level)
	}
	if *style != "" {
		profile.Style = domain.Style(*style)
	}

	transport := provider.New(cfg.LLM, logger)
	orch := generation.NewOrchestrator(transport, generation.Options{
		MaxRetries:  cfg.LLM.MaxRetries,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}, logger)

	result := orch.Generate(context.Background(), generation.Request{
		Targets:     targets,
		Profile:     profile,
		Constraints: domain.DefaultConstraints(),
	})

	if !result.Success {
		logger.Error("generation failed",
			slog.String("error", result.Error.Error()),
			slog.Int("retries", result.RetryCount),
		)
		os.Exit(1)
	}

	for _, w := range result.Warnings {
		logger.Warn("generation warning", slog.String("warning", w))
	}

	out, err := json.MarshalIndent(result.Items, "", "  ")
	if err != nil {
		logger.Error("marshal items", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))
}
