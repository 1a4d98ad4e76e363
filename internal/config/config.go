package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tatianab/asylum-of-sins/internal/models"
)

// Config holds the application configuration.
type Config struct {
	Mode models.Mode
	// Seed fixes maze generation when Seeded is set.
	Seed   int64
	Seeded bool
	// CatalogPath overrides the built-in catalog for Mode.
	CatalogPath string
	// LogPath receives log output while the TUI owns the terminal.
	LogPath string
	// GeminiAPIKey enables generated epitaphs. Optional.
	GeminiAPIKey string
}

// LoadConfig loads the configuration from environment variables and
// validates it.
func LoadConfig() (*Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads environment variables without validating the result, so
// callers can apply overrides such as command-line flags first.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Mode:         models.ModeJudgment,
		CatalogPath:  os.Getenv("ASYLUM_CATALOG"),
		LogPath:      os.Getenv("ASYLUM_LOG"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
	if mode := os.Getenv("ASYLUM_MODE"); mode != "" {
		cfg.Mode = models.Mode(strings.ToLower(mode))
	}
	if seed := os.Getenv("ASYLUM_SEED"); seed != "" {
		if err := cfg.SetSeed(seed); err != nil {
			return nil, fmt.Errorf("ASYLUM_SEED: %w", err)
		}
	}
	return cfg, nil
}

// SetSeed parses and fixes the maze seed.
func (c *Config) SetSeed(s string) error {
	seed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("seed %q is not an integer", s)
	}
	c.Seed, c.Seeded = seed, true
	return nil
}

// Validate checks the settings that do not need the catalog loaded.
func (c *Config) Validate() error {
	switch c.Mode {
	case models.ModeJudgment, models.ModeAsylum:
	default:
		return fmt.Errorf("unknown mode %q: want %q or %q", c.Mode, models.ModeJudgment, models.ModeAsylum)
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
	}
	return nil
}

// Catalog loads the override catalog if one is set and the built-in one for
// Mode otherwise.
func (c *Config) Catalog() (*models.Catalog, error) {
	if c.CatalogPath != "" {
		return models.LoadCatalog(c.CatalogPath)
	}
	return models.DefaultCatalog(c.Mode)
}
