package models

import "github.com/tatianab/asylum-of-sins/internal/maze"

// Kind separates burdens from blessings.
type Kind string

const (
	Sin    Kind = "sin"
	Virtue Kind = "virtue"
)

// Mode names a catalog's ruleset and presentation.
type Mode string

const (
	// ModeJudgment weighs sins against virtues on a wide maze.
	ModeJudgment Mode = "judgment"
	// ModeAsylum carries sins only, with obstacles and a small maze.
	ModeAsylum Mode = "asylum"
)

// Item is a weighted, valued choice offered to the player.
type Item struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Kind        Kind          `yaml:"kind"`
	Weight      int           `yaml:"weight"`
	Value       int           `yaml:"value"`
	Theme       maze.Theme    `yaml:"theme"`
	Obstacle    maze.Obstacle `yaml:"obstacle,omitempty"`
	Description string        `yaml:"description"`
	Narrative   string        `yaml:"narrative,omitempty"`
}

// Net is the item's contribution to the moral balance: positive for virtues,
// negative for sins.
func (it Item) Net() int {
	if it.Kind == Sin {
		return -it.Value
	}
	return it.Value
}

// Catalog is the immutable set of choices and limits for one mode.
type Catalog struct {
	Mode     Mode   `yaml:"mode"`
	Title    string `yaml:"title"`
	Capacity int    `yaml:"capacity"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	// Vision is the fog-of-war radius in cells. Zero disables fog.
	Vision int `yaml:"vision"`
	// ObstacleCost prices a step onto a sin obstacle. Zero disables obstacles.
	ObstacleCost int    `yaml:"obstacle_cost"`
	Items        []Item `yaml:"items"`
}

// Item returns the item with the given ID.
func (c *Catalog) Item(id string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// OfKind returns the catalog's items of kind k in catalog order.
func (c *Catalog) OfKind(k Kind) []Item {
	var out []Item
	for _, it := range c.Items {
		if it.Kind == k {
			out = append(out, it)
		}
	}
	return out
}
