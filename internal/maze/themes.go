package maze

import "math/rand/v2"

// Theme names a mutation pass applied to a carved maze.
type Theme string

// Themes with grid effects.
const (
	AggressiveBranching Theme = "aggressive_branching"
	DeceptiveLoops      Theme = "deceptive_loops"
	ComplexDetours      Theme = "complex_detours"
	HelpfulShortcuts    Theme = "helpful_shortcuts"
)

// Decorative themes. They are legal modifiers but leave the grid untouched.
const (
	NoTheme              Theme = "none"
	TreasureTraps        Theme = "treasure_traps"
	TemptingPaths        Theme = "tempting_paths"
	WideCorridors        Theme = "wide_corridors"
	BlockedShortcuts     Theme = "blocked_shortcuts"
	DeadEnds             Theme = "dead_ends"
	HostileSections      Theme = "hostile_sections"
	SimplifyPaths        Theme = "simplify_paths"
	RemoveBarriers       Theme = "remove_barriers"
	SteadyProgress       Theme = "steady_progress"
	DirectRoutes         Theme = "direct_routes"
	EfficientConnections Theme = "efficient_connections"
	GuidingLights        Theme = "guiding_lights"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case AggressiveBranching, DeceptiveLoops, ComplexDetours, HelpfulShortcuts,
		NoTheme, TreasureTraps, TemptingPaths, WideCorridors, BlockedShortcuts,
		DeadEnds, HostileSections, SimplifyPaths, RemoveBarriers, SteadyProgress,
		DirectRoutes, EfficientConnections, GuidingLights:
		return true
	}
	return false
}

// Mutates reports whether the pass for t can change a grid.
func (t Theme) Mutates() bool {
	switch t {
	case AggressiveBranching, DeceptiveLoops, ComplexDetours, HelpfulShortcuts:
		return true
	}
	return false
}

// Modifier is one theme pass request. Intensity bounds how many local edits
// the pass attempts.
type Modifier struct {
	Theme     Theme
	Intensity int
}

// applyTheme runs the pass for mod. Every pass only opens interior cells.
func applyTheme(g *Grid, mod Modifier, rng *rand.Rand) {
	if mod.Intensity <= 0 {
		return
	}
	switch mod.Theme {
	case AggressiveBranching:
		aggressiveBranching(g, mod.Intensity, rng)
	case DeceptiveLoops:
		deceptiveLoops(g, mod.Intensity, rng)
	case ComplexDetours:
		complexDetours(g, mod.Intensity, rng)
	case HelpfulShortcuts:
		helpfulShortcuts(g, mod.Intensity, rng)
	default:
		// decorative
	}
}

var lattice = [4]Coord{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

func interior(g *Grid, c Coord) bool {
	return c.X > 0 && c.X < g.width-1 && c.Y > 0 && c.Y < g.height-1
}

// randomCenter picks a random odd-indexed cell center.
func randomCenter(g *Grid, rng *rand.Rand) Coord {
	x, _ := oddIn(rng, 1, g.width-1)
	y, _ := oddIn(rng, 1, g.height-1)
	return Coord{x, y}
}

// aggressiveBranching sprouts extra branches from open cell centers, each
// direction with probability 0.4.
func aggressiveBranching(g *Grid, intensity int, rng *rand.Rand) {
	for i := 0; i < intensity; i++ {
		c := randomCenter(g, rng)
		if !g.IsOpen(c) {
			continue
		}
		for _, d := range lattice {
			if rng.Float64() >= 0.4 {
				continue
			}
			n := c.Add(d)
			if interior(g, n) {
				g.open(Coord{c.X + d.X/2, c.Y + d.Y/2})
				g.open(n)
			}
		}
	}
}

// deceptiveLoops closes small 2×2 squares of cell centers into cycles.
func deceptiveLoops(g *Grid, intensity int, rng *rand.Rand) {
	for i := 0; i < intensity/2; i++ {
		x, okx := oddIn(rng, 3, g.width-3)
		y, oky := oddIn(rng, 3, g.height-3)
		if !okx || !oky {
			return
		}
		if !g.IsOpen(Coord{x, y}) {
			continue
		}
		corners := [4]Coord{{x, y}, {x + 2, y}, {x + 2, y + 2}, {x, y + 2}}
		for j := range corners {
			connect(g, corners[j], corners[(j+1)%len(corners)], rng)
		}
	}
}

// complexDetours walks short winding corridors out of open cell centers.
func complexDetours(g *Grid, intensity int, rng *rand.Rand) {
	for i := 0; i < intensity; i++ {
		cur := randomCenter(g, rng)
		if !g.IsOpen(cur) {
			continue
		}
		length := 3 + rng.IntN(4)
		for step := 0; step < length; step++ {
			dirs := lattice
			rng.Shuffle(len(dirs), func(a, b int) { dirs[a], dirs[b] = dirs[b], dirs[a] })
			for _, d := range dirs {
				n := cur.Add(d)
				if !interior(g, n) {
					continue
				}
				g.open(Coord{cur.X + d.X/2, cur.Y + d.Y/2})
				g.open(n)
				cur = n
				break
			}
		}
	}
}

// helpfulShortcuts joins an open center in the left half to one in the right
// half with an L-shaped corridor.
func helpfulShortcuts(g *Grid, intensity int, rng *rand.Rand) {
	mid := g.width / 2
	for i := 0; i < intensity; i++ {
		x1, ok1 := oddIn(rng, 1, mid)
		y1, _ := oddIn(rng, 1, g.height-1)
		x2, ok2 := oddIn(rng, mid|1, g.width-1)
		y2, _ := oddIn(rng, 1, g.height-1)
		if !ok1 || !ok2 {
			return
		}
		a, b := Coord{x1, y1}, Coord{x2, y2}
		if g.IsOpen(a) && g.IsOpen(b) {
			connect(g, a, b, rng)
		}
	}
}

// connect opens an L-shaped corridor between a and b, choosing uniformly
// between horizontal-then-vertical and vertical-then-horizontal.
func connect(g *Grid, a, b Coord, rng *rand.Rand) {
	lox, hix := minmax(a.X, b.X)
	loy, hiy := minmax(a.Y, b.Y)
	if rng.Float64() < 0.5 {
		for x := lox; x <= hix; x++ {
			g.open(Coord{x, a.Y})
		}
		for y := loy; y <= hiy; y++ {
			g.open(Coord{b.X, y})
		}
		return
	}
	for y := loy; y <= hiy; y++ {
		g.open(Coord{a.X, y})
	}
	for x := lox; x <= hix; x++ {
		g.open(Coord{x, b.Y})
	}
}

func minmax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
