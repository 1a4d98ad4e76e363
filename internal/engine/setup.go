package engine

import (
	"context"
	"log"

	"github.com/tatianab/asylum-of-sins/internal/config"
)

// Open builds an engine from cfg. Without an API key, or when the Gemini
// client cannot be created, endings use the fixed epitaphs.
func Open(ctx context.Context, cfg *config.Config) (*Engine, error) {
	c, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}
	var opts []Option
	if cfg.Seeded {
		opts = append(opts, WithSeed(cfg.Seed))
	}
	if cfg.GeminiAPIKey != "" {
		n, err := NewGeminiNarrator(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("narrator: %v", err)
		} else {
			opts = append(opts, WithNarrator(n))
		}
	}
	return NewEngine(c, opts...)
}
