package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/asylum-of-sins/internal/console"
	"github.com/tatianab/asylum-of-sins/internal/engine"
	"github.com/tatianab/asylum-of-sins/internal/maze"
	"github.com/tatianab/asylum-of-sins/internal/models"
)

func newEngine(t *testing.T, mode models.Mode, seed int64) *engine.Engine {
	t.Helper()
	c, err := models.DefaultCatalog(mode)
	require.NoError(t, err)
	e, err := engine.NewEngine(c, engine.WithSeed(seed))
	require.NoError(t, err)
	return e
}

func run(t *testing.T, e *engine.Engine, script ...string) (*console.Shell, string) {
	t.Helper()
	var out bytes.Buffer
	sh := console.New(e, strings.NewReader(strings.Join(script, "\n")+"\n"), &out)
	require.NoError(t, sh.Run(context.Background()))
	return sh, out.String()
}

// keys spells the route as WASD moves.
func keys(route []maze.Coord) string {
	var b strings.Builder
	for i := 1; i < len(route); i++ {
		switch d := route[i]; {
		case d.Y < route[i-1].Y:
			b.WriteByte('w')
		case d.Y > route[i-1].Y:
			b.WriteByte('s')
		case d.X < route[i-1].X:
			b.WriteByte('a')
		default:
			b.WriteByte('d')
		}
	}
	return b.String()
}

func TestShell_Selection(t *testing.T) {
	sh, out := run(t, newEngine(t, models.ModeAsylum, 1),
		"list",
		"take crimson",
		"take gred",
		"take envy",
		"show",
		"take 2",
		"take c",
		"quit",
	)
	assert.Contains(t, out, "ASYLUM OF SINS")
	assert.Contains(t, out, "You take up Crimson Wrath.")
	assert.Contains(t, out, "Fury courses through your veins")
	assert.Contains(t, out, "You take up Golden Greed.")
	assert.Contains(t, out, "capacity exceeded")
	assert.Contains(t, out, "Weight 13 of 15, value 27")
	assert.Contains(t, out, "You set down Crimson Wrath.")
	assert.Contains(t, out, "ambiguous")
	assert.Contains(t, out, "The void remembers you.")
	assert.Equal(t, []string{"greed"}, sh.Session().Selection().IDs())
}

func TestShell_Errors(t *testing.T) {
	_, out := run(t, newEngine(t, models.ModeAsylum, 1),
		"w",
		"begin",
		"map",
		"take xyzzy",
		"dance",
	)
	assert.Contains(t, out, engine.ErrNotPlaying.Error())
	assert.Contains(t, out, engine.ErrEmptySelection.Error())
	assert.Contains(t, out, "unknown item")
	assert.Contains(t, out, `Unknown command "dance"`)
}

func TestShell_PlaythroughToJudgment(t *testing.T) {
	// A second engine with the same seed builds the same maze, which tells
	// the test which keys to press.
	probe := newEngine(t, models.ModeAsylum, 9).NewSession()
	require.NoError(t, probe.Toggle("despair"))
	require.NoError(t, probe.Begin())
	route := probe.RevealedPath()
	require.NotEmpty(t, route)

	sh, out := run(t, newEngine(t, models.ModeAsylum, 9),
		"take despair",
		"begin",
		"ww",
		"hint",
		keys(route),
		"d",
		"quit",
	)
	assert.Contains(t, out, "You step into the maze")
	assert.Contains(t, out, engine.ErrBlockedMove.Error())
	assert.Contains(t, out, "A whisper: go ")
	assert.Contains(t, out, "=== THE ETERNAL VOID ===")
	assert.Contains(t, out, "efficiency 1.00")
	assert.Contains(t, out, engine.ErrFinished.Error())
	assert.Equal(t, engine.Finished, sh.Session().Phase())
}

func TestShell_SolveAndAgain(t *testing.T) {
	sh, out := run(t, newEngine(t, models.ModeJudgment, 2),
		"solve",
		"show",
		"again",
		"show",
	)
	assert.Contains(t, out, "value 69, weight 25")
	assert.Contains(t, out, "moral balance +69")
	assert.Contains(t, out, "The asylum shifts.")
	assert.Contains(t, out, "You carry nothing.")
	assert.Equal(t, int64(3), sh.Session().Seed())
}

func TestShell_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	sh := console.New(newEngine(t, models.ModeAsylum, 1), strings.NewReader("take wrath\n"), &out)
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
	assert.Zero(t, sh.Session().Selection().Len())
}
