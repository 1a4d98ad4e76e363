package maze

import (
	"fmt"
	"math/rand/v2"
)

// MinSize is the smallest width or height that still leaves a border ring
// around at least one cell center.
const MinSize = 5

// Maze is a grid with its designated endpoints. Obstacles marks open cells
// that cost more to cross; the map is nil when none were scattered.
type Maze struct {
	Grid      *Grid
	Start     Coord
	Goal      Coord
	Obstacles map[Coord]Obstacle
}

// ObstacleAt returns the obstacle on c, if any.
func (m *Maze) ObstacleAt(c Coord) (Obstacle, bool) {
	o, ok := m.Obstacles[c]
	return o, ok
}

// Validate checks that width and height describe a symmetric cell/wall lattice.
func Validate(width, height int) error {
	for _, d := range []struct {
		name string
		v    int
	}{{"width", width}, {"height", height}} {
		switch {
		case d.v < MinSize:
			return fmt.Errorf("%w: %s %d is below %d", ErrInvalidDimension, d.name, d.v, MinSize)
		case d.v%2 == 0:
			return fmt.Errorf("%w: %s %d must be odd", ErrInvalidDimension, d.name, d.v)
		}
	}
	return nil
}

// Normalize repairs a requested size: values below MinSize are raised to it and
// even values are rounded up to the next odd number.
func Normalize(width, height int) (int, int) {
	fix := func(v int) int {
		if v < MinSize {
			v = MinSize
		}
		if v%2 == 0 {
			v++
		}
		return v
	}
	return fix(width), fix(height)
}

// Generate carves a perfect maze of the given size, applies the theme passes
// named by mods in order, and guarantees that start (1,1) and goal
// (width-2,height-2) are open.
func Generate(width, height int, mods []Modifier, rng *rand.Rand) (*Maze, error) {
	if err := Validate(width, height); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	for _, m := range mods {
		if !m.Theme.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, m.Theme)
		}
	}

	m := &Maze{
		Grid:  Carve(width, height, rng),
		Start: Coord{1, 1},
		Goal:  Coord{width - 2, height - 2},
	}
	for _, mod := range mods {
		applyTheme(m.Grid, mod, rng)
	}

	m.Grid.open(m.Start)
	m.Grid.open(m.Goal)

	return m, nil
}

// Carve returns a spanning-tree maze built by randomized depth-first search on
// the odd-indexed cell centers, starting at (1,1). The caller must pass valid
// dimensions.
func Carve(width, height int, rng *rand.Rand) *Grid {
	g := NewGrid(width, height)
	steps := [4]Coord{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}

	start := Coord{1, 1}
	g.open(start)
	stack := []Coord{start}
	candidates := make([]Coord, 0, 4)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, s := range steps {
			n := cur.Add(s)
			if n.X > 0 && n.X < width-1 && n.Y > 0 && n.Y < height-1 && g.At(n) == Wall {
				candidates = append(candidates, s)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		s := candidates[rng.IntN(len(candidates))]
		g.open(Coord{cur.X + s.X/2, cur.Y + s.Y/2})
		next := cur.Add(s)
		g.open(next)
		stack = append(stack, next)
	}

	return g
}
