package models

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/asylum-of-sins/internal/maze"
)

//go:embed catalogs/*.yaml
var builtin embed.FS

var (
	// ErrInvalidCatalog wraps every catalog validation failure.
	ErrInvalidCatalog = errors.New("catalog: invalid")
	// ErrAmbiguousItem indicates a lookup that matched more than one item.
	ErrAmbiguousItem = errors.New("catalog: ambiguous item")
)

// DefaultCatalog returns the built-in catalog for mode.
func DefaultCatalog(mode Mode) (*Catalog, error) {
	data, err := builtin.ReadFile("catalogs/" + string(mode) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: no built-in catalog for mode %q", ErrInvalidCatalog, mode)
	}
	return ParseCatalog(data)
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes YAML into a validated catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	for i := range c.Items {
		if c.Items[i].Theme == "" {
			c.Items[i].Theme = maze.NoTheme
		}
		if c.Items[i].Name == "" {
			c.Items[i].Name = c.Items[i].ID
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects catalogs that no session could run on.
func (c *Catalog) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, fmt.Sprintf(format, args...))
	}

	switch c.Mode {
	case ModeJudgment, ModeAsylum:
	default:
		return invalid("unknown mode %q", c.Mode)
	}
	if c.Capacity < 0 {
		return invalid("capacity %d is negative", c.Capacity)
	}
	if err := maze.Validate(c.Width, c.Height); err != nil {
		return invalid("%v", err)
	}
	if c.Vision < 0 {
		return invalid("vision %d is negative", c.Vision)
	}
	if c.ObstacleCost < 0 {
		return invalid("obstacle cost %d is negative", c.ObstacleCost)
	}

	seen := make(map[string]bool, len(c.Items))
	for i, it := range c.Items {
		if it.ID == "" {
			return invalid("item %d has no id", i)
		}
		if seen[it.ID] {
			return invalid("duplicate item id %q", it.ID)
		}
		seen[it.ID] = true

		if it.Kind != Sin && it.Kind != Virtue {
			return invalid("item %q has unknown kind %q", it.ID, it.Kind)
		}
		if it.Weight < 0 {
			return invalid("item %q has negative weight %d", it.ID, it.Weight)
		}
		if !it.Theme.Valid() {
			return invalid("item %q has unknown theme %q", it.ID, it.Theme)
		}
		switch it.Obstacle {
		case "", maze.Fire, maze.Gaze, maze.Bones, maze.Gold, maze.Barrier:
		default:
			return invalid("item %q has unknown obstacle %q", it.ID, it.Obstacle)
		}
	}
	return nil
}

// Lookup resolves what a player typed into an item. It accepts a 1-based
// position in the catalog, an exact ID or name, a unique prefix, or a name
// within a small edit distance.
func (c *Catalog) Lookup(query string) (Item, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Item{}, fmt.Errorf("%w: empty name", ErrUnknownItem)
	}

	if n, err := strconv.Atoi(q); err == nil {
		if n < 1 || n > len(c.Items) {
			return Item{}, fmt.Errorf("%w: no item number %d", ErrUnknownItem, n)
		}
		return c.Items[n-1], nil
	}

	for _, it := range c.Items {
		for _, key := range lookupKeys(it) {
			if key == q {
				return it, nil
			}
		}
	}

	var prefixed []Item
	for _, it := range c.Items {
		for _, key := range lookupKeys(it) {
			if strings.HasPrefix(key, q) {
				prefixed = append(prefixed, it)
				break
			}
		}
	}
	switch len(prefixed) {
	case 1:
		return prefixed[0], nil
	case 0:
	default:
		return Item{}, fmt.Errorf("%w: %q could be %s", ErrAmbiguousItem, query, joinIDs(prefixed))
	}

	if len(q) < 3 {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, query)
	}
	best, bestDist, tie := Item{}, -1, false
	for _, it := range c.Items {
		for _, key := range lookupKeys(it) {
			d := levenshtein.ComputeDistance(q, key)
			if d > levenshteinLimit(len(key)) {
				continue
			}
			switch {
			case bestDist < 0 || d < bestDist:
				best, bestDist, tie = it, d, false
			case d == bestDist && best.ID != it.ID:
				tie = true
			}
		}
	}
	if bestDist < 0 {
		return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, query)
	}
	if tie {
		return Item{}, fmt.Errorf("%w: %q", ErrAmbiguousItem, query)
	}
	return best, nil
}

// lookupKeys lists the lowercase spellings an item answers to: its ID, its
// full name, and each word of the name.
func lookupKeys(it Item) []string {
	name := strings.ToLower(it.Name)
	keys := []string{strings.ToLower(it.ID), name}
	if words := strings.Fields(name); len(words) > 1 {
		keys = append(keys, words...)
	}
	return keys
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func joinIDs(items []Item) string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return strings.Join(ids, ", ")
}
