package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/branxiety/gameplan-ai/internal/catalog"
	"github.com/branxiety/gameplan-ai/internal/cli"
	"github.com/branxiety/gameplan-ai/internal/coach"
	"github.com/branxiety/gameplan-ai/internal/config"
	"github.com/branxiety/gameplan-ai/internal/llm"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Stderr keeps structured logs out of the TUI and piped plan output.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}
	client := llm.NewOpenAIClient(cfg.LLM(), observer)

	cat := catalog.Default()
	detector := catalog.NewDetector()
	sampler := catalog.NewSampler(cat)

	app := &cli.App{
		Planner:  coach.NewPlanner(cat, detector, sampler, client),
		Catalog:  cat,
		Detector: detector,
		Logger:   logger,
		Addr:     cfg.Addr,
		Version:  version,
	}

	// Detect interactive terminal for the form-first entrypoint.
	app.IsTerminal = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
