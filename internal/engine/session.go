package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tatianab/asylum-of-sins/internal/judgment"
	"github.com/tatianab/asylum-of-sins/internal/knapsack"
	"github.com/tatianab/asylum-of-sins/internal/maze"
	"github.com/tatianab/asylum-of-sins/internal/models"
	"github.com/tatianab/asylum-of-sins/internal/pathfind"
)

var (
	ErrOutOfBounds      = errors.New("move leaves the maze")
	ErrBlockedMove      = errors.New("the walls of judgment block your path")
	ErrInvalidDirection = errors.New("there is no such direction")
	ErrNotPlaying       = errors.New("the maze has not been entered")
	ErrFinished         = errors.New("the maze is already behind you")
	ErrNotSelecting     = errors.New("the burden is already chosen")
	ErrEmptySelection   = errors.New("you must carry at least one burden")
	ErrNotFinished      = errors.New("judgment waits at the exit")
)

// Phase is where a session is in its lifecycle.
type Phase int

const (
	Selecting Phase = iota
	Playing
	Finished
)

func (p Phase) String() string {
	switch p {
	case Selecting:
		return "selecting"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Direction is one of the four moves a player can make.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool { return d >= North && d <= West }

// Delta is the coordinate offset of one step in d, or the zero offset when d
// is not valid.
func (d Direction) Delta() maze.Coord {
	if !d.Valid() {
		return maze.Coord{}
	}
	return maze.Directions[d]
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return [...]string{"north", "east", "south", "west"}[d]
}

// ParseDirection accepts WASD keys, arrow names and compass names.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "n", "up", "north":
		return North, true
	case "d", "e", "right", "east":
		return East, true
	case "s", "down", "south":
		return South, true
	case "a", "left", "west":
		return West, true
	}
	return 0, false
}

// Step reports what happened on a successful move.
type Step struct {
	To maze.Coord
	// Obstacle is set when the player stepped onto one. Omen is the
	// description of the sin that left it.
	Obstacle maze.Obstacle
	Omen     string
	Arrived  bool
}

// Verdict is a scored ending with its epitaph.
type Verdict struct {
	judgment.Verdict
	Title        string
	Lines        []string
	PlayerSteps  int
	OptimalSteps int
	NetValue     int
}

// Session is one playthrough. It is not safe for concurrent use.
type Session struct {
	engine *Engine
	seed   int64
	phase  Phase

	selection models.Selection

	maze    *maze.Maze
	cost    pathfind.CostFunc
	optimal pathfind.Path
	toGoal  [][]int
	pos     maze.Coord
	trail   pathfind.Path
	seen    map[maze.Coord]bool
	verdict Verdict
}

func (s *Session) Seed() int64                 { return s.seed }
func (s *Session) Phase() Phase                { return s.phase }
func (s *Session) Catalog() *models.Catalog    { return s.engine.catalog }
func (s *Session) Selection() models.Selection { return s.selection }

// Toggle adds or removes the catalog item with id.
func (s *Session) Toggle(id string) error {
	if s.phase != Selecting {
		return ErrNotSelecting
	}
	it, ok := s.engine.catalog.Item(id)
	if !ok {
		return fmt.Errorf("%w: %q", models.ErrUnknownItem, id)
	}
	next, err := s.selection.Toggle(it)
	if err != nil {
		return err
	}
	s.selection = next
	return nil
}

// Clear empties the selection.
func (s *Session) Clear() error {
	if s.phase != Selecting {
		return ErrNotSelecting
	}
	s.selection = models.NewSelection(s.engine.catalog.Capacity)
	return nil
}

// Solve replaces the selection with the most valuable set that fits. In
// judgment mode value is the item's moral net, so sins are never chosen.
func (s *Session) Solve() (knapsack.Result, error) {
	if s.phase != Selecting {
		return knapsack.Result{}, ErrNotSelecting
	}
	c := s.engine.catalog
	items := make([]knapsack.Item, len(c.Items))
	for i, it := range c.Items {
		v := it.Value
		if c.Mode == models.ModeJudgment {
			v = it.Net()
		}
		items[i] = knapsack.Item{Weight: it.Weight, Value: v}
	}
	res, err := knapsack.Solve(items, c.Capacity)
	if err != nil {
		return knapsack.Result{}, err
	}

	chosen := make([]models.Item, len(res.Indices))
	for i, idx := range res.Indices {
		chosen[i] = c.Items[idx]
	}
	sel, err := models.SelectionOf(c.Capacity, chosen...)
	if err != nil {
		return knapsack.Result{}, err
	}
	s.selection = sel
	return res, nil
}

// Begin freezes the selection and builds the maze it shapes.
func (s *Session) Begin() error {
	if s.phase != Selecting {
		return ErrNotSelecting
	}
	c := s.engine.catalog
	if c.Mode == models.ModeAsylum && s.selection.Len() == 0 {
		return ErrEmptySelection
	}

	var mods []maze.Modifier
	var specs []maze.ObstacleSpec
	for _, it := range s.selection.Items() {
		mods = append(mods, maze.Modifier{Theme: it.Theme, Intensity: it.Weight})
		if it.Obstacle != "" {
			specs = append(specs, maze.ObstacleSpec{Kind: it.Obstacle, Count: it.Weight})
		}
	}

	rng := maze.NewRNG(s.seed)
	m, err := maze.Generate(c.Width, c.Height, mods, rng)
	if err != nil {
		return err
	}
	s.cost = pathfind.UnitCost
	if c.ObstacleCost > 0 {
		maze.ScatterObstacles(m, specs, rng)
		s.cost = pathfind.ObstacleCost(m, c.ObstacleCost)
	}

	s.maze = m
	s.optimal = pathfind.Shortest(m.Grid, m.Start, m.Goal, s.cost)
	s.toGoal = pathfind.Distances(m.Grid, m.Goal, s.cost)
	s.pos = m.Start
	s.trail = pathfind.Path{m.Start}
	s.seen = make(map[maze.Coord]bool)
	s.reveal()
	s.phase = Playing
	return nil
}

// Move steps the player one cell in d. A rejected move leaves the session
// unchanged.
func (s *Session) Move(d Direction) (Step, error) {
	switch s.phase {
	case Selecting:
		return Step{}, ErrNotPlaying
	case Finished:
		return Step{}, ErrFinished
	}
	if !d.Valid() {
		return Step{}, ErrInvalidDirection
	}
	to := s.pos.Add(d.Delta())
	if !s.maze.Grid.InBounds(to) {
		return Step{}, ErrOutOfBounds
	}
	if !s.maze.Grid.IsOpen(to) {
		return Step{}, ErrBlockedMove
	}

	s.pos = to
	s.trail = append(s.trail, to)
	s.reveal()

	step := Step{To: to}
	if o, ok := s.maze.ObstacleAt(to); ok {
		step.Obstacle = o
		step.Omen = s.omen(o)
	}
	if to == s.maze.Goal {
		step.Arrived = true
		s.finish()
	}
	return step, nil
}

func (s *Session) omen(o maze.Obstacle) string {
	for _, it := range s.selection.Items() {
		if it.Obstacle == o {
			return it.Description
		}
	}
	return ""
}

func (s *Session) finish() {
	in := s.Input()
	v := judgment.Judge(s.engine.rules, in)
	ep := s.engine.rules.Epitaph(v.Ending)
	s.verdict = Verdict{
		Verdict:      v,
		Title:        ep.Title,
		Lines:        ep.Lines,
		PlayerSteps:  in.PlayerSteps,
		OptimalSteps: in.OptimalSteps,
		NetValue:     in.NetValue,
	}
	s.phase = Finished
}

// Input is what the scorer sees for the session so far.
func (s *Session) Input() judgment.Input {
	in := judgment.Input{
		PlayerSteps:  s.trail.Steps(),
		OptimalSteps: s.optimal.Steps(),
		ItemCount:    s.selection.Len(),
		Flags:        make(map[judgment.Flag]bool),
	}
	if s.engine.catalog.Mode == models.ModeJudgment {
		in.NetValue = s.selection.Balance()
	} else {
		in.NetValue = s.selection.Value()
	}
	for _, id := range s.selection.IDs() {
		in.Flags[judgment.Flag(id)] = true
	}
	return in
}

// Verdict returns the ending once the goal is reached.
func (s *Session) Verdict() (Verdict, error) {
	if s.phase != Finished {
		return Verdict{}, ErrNotFinished
	}
	return s.verdict, nil
}

// Hint returns the first move of a cheapest route from the current position.
func (s *Session) Hint() (Direction, bool) {
	if s.phase != Playing {
		return 0, false
	}
	// Entering n and then walking on to the goal costs toGoal[n] plus a
	// constant, so the cheapest neighbor in the field is the next step.
	best, bestDist := Direction(0), pathfind.Unreachable
	for _, d := range []Direction{North, East, South, West} {
		n := s.pos.Add(d.Delta())
		if !s.maze.Grid.IsOpen(n) {
			continue
		}
		if dist := s.toGoal[n.Y][n.X]; dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, bestDist != pathfind.Unreachable
}

// RevealedPath returns a copy of the optimal route computed at Begin.
func (s *Session) RevealedPath() pathfind.Path {
	return append(pathfind.Path(nil), s.optimal...)
}

// Reset discards the playthrough and starts over with a new seed.
func (s *Session) Reset() {
	*s = *s.engine.NewSession()
}

// Maze is nil until Begin.
func (s *Session) Maze() *maze.Maze            { return s.maze }
func (s *Session) Position() maze.Coord        { return s.pos }
func (s *Session) CostFunc() pathfind.CostFunc { return s.cost }

// Trail returns a copy of every cell the player has stood on, in order.
func (s *Session) Trail() pathfind.Path {
	return append(pathfind.Path(nil), s.trail...)
}

// Visible reports whether c has been seen. With zero vision the whole maze
// is visible.
func (s *Session) Visible(c maze.Coord) bool {
	if s.maze == nil {
		return false
	}
	if s.engine.catalog.Vision <= 0 || s.phase == Finished {
		return s.maze.Grid.InBounds(c)
	}
	return s.seen[c]
}

func (s *Session) reveal() {
	r := s.engine.catalog.Vision
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c := maze.Coord{X: s.pos.X + dx, Y: s.pos.Y + dy}
			if dx*dx+dy*dy <= r*r && s.maze.Grid.InBounds(c) {
				s.seen[c] = true
			}
		}
	}
}
