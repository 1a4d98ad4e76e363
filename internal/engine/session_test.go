package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/asylum-of-sins/internal/engine"
	"github.com/tatianab/asylum-of-sins/internal/judgment"
	"github.com/tatianab/asylum-of-sins/internal/maze"
	"github.com/tatianab/asylum-of-sins/internal/models"
	"github.com/tatianab/asylum-of-sins/internal/pathfind"
)

func newEngine(t *testing.T, mode models.Mode, seed int64) *engine.Engine {
	t.Helper()
	c, err := models.DefaultCatalog(mode)
	require.NoError(t, err)
	e, err := engine.NewEngine(c, engine.WithSeed(seed))
	require.NoError(t, err)
	return e
}

func begin(t *testing.T, mode models.Mode, seed int64, ids ...string) *engine.Session {
	t.Helper()
	s := newEngine(t, mode, seed).NewSession()
	for _, id := range ids {
		require.NoError(t, s.Toggle(id))
	}
	require.NoError(t, s.Begin())
	return s
}

func dirTo(t *testing.T, from, to maze.Coord) engine.Direction {
	t.Helper()
	for _, d := range []engine.Direction{engine.North, engine.East, engine.South, engine.West} {
		if from.Add(d.Delta()) == to {
			return d
		}
	}
	t.Fatalf("%v and %v are not adjacent", from, to)
	return 0
}

// walk follows p from the session's current position and returns the last step.
func walk(t *testing.T, s *engine.Session, p pathfind.Path) engine.Step {
	t.Helper()
	var last engine.Step
	for i := 1; i < len(p); i++ {
		step, err := s.Move(dirTo(t, p[i-1], p[i]))
		require.NoError(t, err, "step %d", i)
		last = step
	}
	return last
}

func TestSession_Selection(t *testing.T) {
	s := newEngine(t, models.ModeAsylum, 1).NewSession()
	assert.Equal(t, engine.Selecting, s.Phase())

	require.NoError(t, s.Toggle("wrath"))
	require.NoError(t, s.Toggle("greed"))
	assert.Equal(t, 13, s.Selection().Weight())

	err := s.Toggle("envy")
	assert.ErrorIs(t, err, models.ErrCapacityExceeded)
	assert.Equal(t, 2, s.Selection().Len())

	in := s.Input()
	assert.True(t, in.Has(judgment.FlagWrath))
	assert.True(t, in.Has(judgment.FlagGreed))
	assert.False(t, in.Has(judgment.FlagDespair))
	assert.Equal(t, 27, in.NetValue)

	require.NoError(t, s.Toggle("wrath"))
	assert.Equal(t, []string{"greed"}, s.Selection().IDs())

	assert.ErrorIs(t, s.Toggle("charity"), models.ErrUnknownItem)

	require.NoError(t, s.Clear())
	assert.Zero(t, s.Selection().Len())
}

func TestSession_SolveAsylum(t *testing.T) {
	s := newEngine(t, models.ModeAsylum, 1).NewSession()
	require.NoError(t, s.Toggle("sloth"))

	res, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, 32, res.TotalValue)
	assert.Equal(t, 32, s.Selection().Value())
	assert.Equal(t, res.TotalWeight, s.Selection().Weight())
	assert.LessOrEqual(t, s.Selection().Weight(), 15)
}

func TestSession_SolveJudgmentTakesOnlyVirtues(t *testing.T) {
	s := newEngine(t, models.ModeJudgment, 1).NewSession()
	_, err := s.Solve()
	require.NoError(t, err)

	sel := s.Selection()
	assert.Zero(t, sel.CountOf(models.Sin))
	assert.Equal(t, 69, sel.Balance())
	assert.Equal(t, 25, sel.Weight())
	assert.False(t, sel.Has("forgiveness"))
}

func TestSession_BeginRequiresBurdenInAsylum(t *testing.T) {
	s := newEngine(t, models.ModeAsylum, 1).NewSession()
	assert.ErrorIs(t, s.Begin(), engine.ErrEmptySelection)
	assert.Equal(t, engine.Selecting, s.Phase())
	assert.Nil(t, s.Maze())

	j := newEngine(t, models.ModeJudgment, 1).NewSession()
	require.NoError(t, j.Begin())
	assert.Equal(t, engine.Playing, j.Phase())
}

func TestSession_PhaseErrors(t *testing.T) {
	s := newEngine(t, models.ModeAsylum, 3).NewSession()
	_, err := s.Move(engine.East)
	assert.ErrorIs(t, err, engine.ErrNotPlaying)
	_, ok := s.Hint()
	assert.False(t, ok)

	require.NoError(t, s.Toggle("despair"))
	require.NoError(t, s.Begin())

	assert.ErrorIs(t, s.Toggle("wrath"), engine.ErrNotSelecting)
	assert.ErrorIs(t, s.Clear(), engine.ErrNotSelecting)
	assert.ErrorIs(t, s.Begin(), engine.ErrNotSelecting)
	_, err = s.Solve()
	assert.ErrorIs(t, err, engine.ErrNotSelecting)
	_, err = s.Verdict()
	assert.ErrorIs(t, err, engine.ErrNotFinished)
}

func TestSession_BlockedMoveLeavesStateAlone(t *testing.T) {
	s := begin(t, models.ModeAsylum, 3, "despair")
	start := s.Maze().Start
	require.Equal(t, maze.Coord{X: 1, Y: 1}, start)

	for _, d := range []engine.Direction{engine.North, engine.West} {
		_, err := s.Move(d)
		assert.ErrorIs(t, err, engine.ErrBlockedMove, d)
	}
	assert.Equal(t, start, s.Position())
	assert.Len(t, s.Trail(), 1)
}

func TestSession_InvalidDirectionIsRejected(t *testing.T) {
	s := begin(t, models.ModeAsylum, 3, "despair")
	start := s.Position()

	for _, d := range []engine.Direction{-1, 4, 99} {
		var err error
		require.NotPanics(t, func() { _, err = s.Move(d) }, d)
		assert.ErrorIs(t, err, engine.ErrInvalidDirection, d)
	}
	assert.Equal(t, start, s.Position())
	assert.Equal(t, pathfind.Path{start}, s.Trail())
	assert.Equal(t, engine.Playing, s.Phase())
}

func TestDirection_OutOfRange(t *testing.T) {
	assert.Equal(t, "Direction(4)", engine.Direction(4).String())
	assert.Equal(t, "west", engine.West.String())
	assert.Equal(t, maze.Coord{}, engine.Direction(-1).Delta())
	assert.False(t, engine.Direction(4).Valid())
	assert.True(t, engine.North.Valid())
}

func TestSession_OptimalWalkInAsylum(t *testing.T) {
	s := begin(t, models.ModeAsylum, 11, "despair")
	route := s.RevealedPath()
	require.NotEmpty(t, route)
	assert.Equal(t, s.Maze().Start, route[0])
	assert.Equal(t, s.Maze().Goal, route[len(route)-1])

	last := walk(t, s, route)
	assert.True(t, last.Arrived)
	assert.Equal(t, engine.Finished, s.Phase())

	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, judgment.EternalSilence, v.Ending)
	assert.Equal(t, 1.0, v.Efficiency)
	assert.Equal(t, route.Steps(), v.PlayerSteps)
	assert.Equal(t, route.Steps(), v.OptimalSteps)
	assert.Equal(t, 6, v.NetValue)
	assert.Equal(t, judgment.EpitaphFor(judgment.EternalSilence).Title, v.Title)

	_, err = s.Move(engine.North)
	assert.ErrorIs(t, err, engine.ErrFinished)
}

func TestSession_OptimalWalkInJudgment(t *testing.T) {
	s := begin(t, models.ModeJudgment, 5, "compassion")
	walk(t, s, s.RevealedPath())

	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, judgment.Purgatory, v.Ending)
	assert.InDelta(t, 12.0, v.Score, 1e-9)
}

func TestSession_AsylumPurgatoryHasItsOwnText(t *testing.T) {
	s := begin(t, models.ModeAsylum, 4, "envy")
	walk(t, s, s.RevealedPath())

	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, judgment.Purgatory, v.Ending)
	assert.Equal(t, "THE GRAY BETWEEN", v.Title)
	assert.NotEqual(t, judgment.EpitaphFor(judgment.Purgatory).Lines, v.Lines)
}

func TestSession_WanderingCostsEfficiency(t *testing.T) {
	s := begin(t, models.ModeJudgment, 5, "compassion")
	route := s.RevealedPath()
	require.GreaterOrEqual(t, len(route), 2)

	// step forward and back before taking the route
	back := dirTo(t, route[1], route[0])
	_, err := s.Move(dirTo(t, route[0], route[1]))
	require.NoError(t, err)
	_, err = s.Move(back)
	require.NoError(t, err)
	walk(t, s, route)

	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, route.Steps()+2, v.PlayerSteps)
	assert.Greater(t, v.Efficiency, 1.0)
}

func TestSession_HintsReachTheGoalAtOptimalCost(t *testing.T) {
	s := begin(t, models.ModeAsylum, 21, "wrath", "greed")
	cost := s.CostFunc()
	want := s.RevealedPath().Cost(cost)

	limit := s.Maze().Grid.Width() * s.Maze().Grid.Height()
	for i := 0; i < limit && s.Phase() == engine.Playing; i++ {
		d, ok := s.Hint()
		require.True(t, ok)
		_, err := s.Move(d)
		require.NoError(t, err)
	}
	require.Equal(t, engine.Finished, s.Phase())
	assert.Equal(t, want, s.Trail().Cost(cost))

	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, judgment.Hell, v.Ending)
}

func TestSession_ObstaclesFollowCarriedSins(t *testing.T) {
	s := begin(t, models.ModeAsylum, 4, "wrath")
	m := s.Maze()
	assert.Len(t, m.Obstacles, 6)
	for c, o := range m.Obstacles {
		assert.Equal(t, maze.Fire, o)
		assert.True(t, m.Grid.IsOpen(c))
		assert.NotEqual(t, m.Start, c)
		assert.NotEqual(t, m.Goal, c)
	}

	j := begin(t, models.ModeJudgment, 4, "wrath")
	assert.Empty(t, j.Maze().Obstacles)
}

func TestSession_ObstacleOmen(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		s := begin(t, models.ModeAsylum, seed, "wrath")
		route := s.RevealedPath()
		hit := -1
		for i, c := range route {
			if _, ok := s.Maze().ObstacleAt(c); ok {
				hit = i
				break
			}
		}
		if hit < 0 {
			continue
		}
		step := walk(t, s, route[:hit+1])
		assert.Equal(t, maze.Fire, step.Obstacle)
		assert.Equal(t, "The fires of wrath burn your soul", step.Omen)
		return
	}
	t.Fatal("no seed put an obstacle on the route")
}

func TestSession_Deterministic(t *testing.T) {
	a := begin(t, models.ModeAsylum, 42, "envy", "despair")
	b := begin(t, models.ModeAsylum, 42, "envy", "despair")
	assert.Equal(t, a.Maze().Grid.String(), b.Maze().Grid.String())
	assert.Equal(t, a.Maze().Obstacles, b.Maze().Obstacles)
	assert.Equal(t, a.RevealedPath(), b.RevealedPath())
}

func TestSession_FogOfWar(t *testing.T) {
	s := begin(t, models.ModeAsylum, 8, "sloth")
	assert.True(t, s.Visible(maze.Coord{X: 1, Y: 1}))
	assert.True(t, s.Visible(maze.Coord{X: 3, Y: 1}))
	assert.True(t, s.Visible(maze.Coord{X: 0, Y: 0}))
	assert.False(t, s.Visible(maze.Coord{X: 3, Y: 3}))
	assert.False(t, s.Visible(maze.Coord{X: 13, Y: 13}))

	fogged := s.Render(false)
	assert.Contains(t, fogged, "@")
	assert.Contains(t, fogged, "~")
	assert.Len(t, strings.Split(fogged, "\n"), 15)

	full := s.Render(true)
	assert.NotContains(t, full, "~")
	assert.Contains(t, full, "E")
	assert.Contains(t, full, "*")

	walk(t, s, s.RevealedPath())
	assert.True(t, s.Visible(maze.Coord{X: 13, Y: 1}))
}

func TestSession_Reset(t *testing.T) {
	e := newEngine(t, models.ModeAsylum, 5)
	s := e.NewSession()
	assert.Equal(t, int64(5), s.Seed())
	require.NoError(t, s.Toggle("pride"))
	require.NoError(t, s.Begin())

	s.Reset()
	assert.Equal(t, engine.Selecting, s.Phase())
	assert.Nil(t, s.Maze())
	assert.Zero(t, s.Selection().Len())
	assert.Equal(t, int64(6), s.Seed())
	assert.Empty(t, s.Render(true))
}

func TestParseDirection(t *testing.T) {
	tests := map[string]engine.Direction{
		"w": engine.North, "UP": engine.North,
		"d": engine.East, "east": engine.East,
		"s": engine.South, " down ": engine.South,
		"a": engine.West, "left": engine.West,
	}
	for in, want := range tests {
		got, ok := engine.ParseDirection(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := engine.ParseDirection("jump")
	assert.False(t, ok)
}
