// Package engine runs a playthrough: item selection, maze construction, player
// movement and the final judgment.
package engine

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tatianab/asylum-of-sins/internal/judgment"
	"github.com/tatianab/asylum-of-sins/internal/models"
)

type Engine struct {
	catalog  *models.Catalog
	rules    judgment.Ruleset
	narrator Narrator

	mu     sync.Mutex
	seeded bool
	seed   int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithNarrator replaces the StaticNarrator used for endings.
func WithNarrator(n Narrator) Option {
	return func(e *Engine) {
		if n != nil {
			e.narrator = n
		}
	}
}

// WithSeed makes maze generation reproducible. The first session uses seed,
// and each later one the next integer.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seeded = true
		e.seed = seed
	}
}

// NewEngine returns an engine for catalog c. The catalog's mode selects the
// judgment rules.
func NewEngine(c *models.Catalog, opts ...Option) (*Engine, error) {
	if c == nil {
		return nil, errors.New("engine: nil catalog")
	}
	rules, ok := judgment.RulesFor(string(c.Mode))
	if !ok {
		return nil, fmt.Errorf("engine: no rules for mode %q", c.Mode)
	}
	e := &Engine{
		catalog:  c,
		rules:    rules,
		narrator: StaticNarrator{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Close releases the narrator if it holds resources.
func (e *Engine) Close() error {
	if c, ok := e.narrator.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (e *Engine) Catalog() *models.Catalog { return e.catalog }
func (e *Engine) Narrator() Narrator       { return e.narrator }

// NewSession starts a playthrough in the selection phase.
func (e *Engine) NewSession() *Session {
	return e.NewSessionSeed(e.nextSeed())
}

// NewSessionSeed starts a playthrough whose maze is built from seed.
func (e *Engine) NewSessionSeed(seed int64) *Session {
	return &Session{
		engine:    e,
		seed:      seed,
		selection: models.NewSelection(e.catalog.Capacity),
	}
}

func (e *Engine) nextSeed() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.seeded {
		return time.Now().UnixNano()
	}
	s := e.seed
	e.seed++
	return s
}
