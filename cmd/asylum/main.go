package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/asylum-of-sins/internal/config"
	"github.com/tatianab/asylum-of-sins/internal/console"
	"github.com/tatianab/asylum-of-sins/internal/engine"
	"github.com/tatianab/asylum-of-sins/internal/models"
	"github.com/tatianab/asylum-of-sins/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var (
		mode      string
		seed      string
		plain     bool
		noNarrate bool
	)
	flag.StringVar(&mode, "mode", string(cfg.Mode), "ruleset: judgment or asylum")
	flag.StringVar(&seed, "seed", "", "maze seed (random when empty)")
	flag.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "YAML catalog overriding the built-in one")
	flag.StringVar(&cfg.LogPath, "log", cfg.LogPath, "write logs to this file")
	flag.BoolVar(&plain, "console", false, "play line by line instead of full screen")
	flag.BoolVar(&noNarrate, "no-narrator", false, "use the fixed epitaphs even when GEMINI_API_KEY is set")
	flag.Parse()

	cfg.Mode = models.Mode(mode)
	if seed != "" {
		if err := cfg.SetSeed(seed); err != nil {
			return fmt.Errorf("-seed: %w", err)
		}
	}
	if noNarrate {
		cfg.GeminiAPIKey = ""
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	switch {
	case cfg.LogPath != "":
		f, err := tea.LogToFile(cfg.LogPath, "asylum")
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer f.Close()
	case !plain:
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	eng, err := engine.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}
	defer eng.Close()

	if plain {
		err = console.New(eng, os.Stdin, os.Stdout).Run(ctx)
	} else {
		err = tui.Run(eng)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
