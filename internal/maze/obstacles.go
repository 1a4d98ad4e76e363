package maze

import "math/rand/v2"

// Obstacle is a passable hazard left in the maze by a carried sin.
type Obstacle string

const (
	Fire    Obstacle = "fire"
	Gaze    Obstacle = "gaze"
	Bones   Obstacle = "bones"
	Gold    Obstacle = "gold"
	Barrier Obstacle = "barrier"
)

// Glyph returns the single-rune map symbol for o.
func (o Obstacle) Glyph() rune {
	switch o {
	case Fire:
		return '^'
	case Gaze:
		return 'o'
	case Bones:
		return 'x'
	case Gold:
		return '$'
	default:
		return '%'
	}
}

// ObstacleSpec asks for Count obstacles of one kind.
type ObstacleSpec struct {
	Kind  Obstacle
	Count int
}

// maxPlacementAttempts bounds the search for a free cell per obstacle.
const maxPlacementAttempts = 256

// ScatterObstacles places obstacles on random open cells with both coordinates
// in [2, size-3], never on the start, the goal, or an existing obstacle. A spec
// whose obstacles cannot all find a free cell places as many as it can. It
// returns the number placed.
func ScatterObstacles(m *Maze, specs []ObstacleSpec, rng *rand.Rand) int {
	w, h := m.Grid.Width(), m.Grid.Height()
	if w-3 < 2 || h-3 < 2 {
		return 0
	}
	if m.Obstacles == nil {
		m.Obstacles = make(map[Coord]Obstacle)
	}

	placed := 0
	for _, spec := range specs {
		for i := 0; i < spec.Count; i++ {
			for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
				c := Coord{2 + rng.IntN(w-4), 2 + rng.IntN(h-4)}
				if !m.Grid.IsOpen(c) || c == m.Start || c == m.Goal {
					continue
				}
				if _, taken := m.Obstacles[c]; taken {
					continue
				}
				m.Obstacles[c] = spec.Kind
				placed++
				break
			}
		}
	}
	return placed
}
