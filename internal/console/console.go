// Package console is the line-oriented way through the asylum: type a
// command, read the result.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tatianab/asylum-of-sins/internal/engine"
	"github.com/tatianab/asylum-of-sins/internal/models"
)

const helpText = `Choosing your burden:
  list            show every sin and virtue on offer
  take <name>     take or release an item (name, number or close spelling)
  solve           let the algorithm choose the heaviest judgment you can bear
  show            show what you carry
  clear           set everything down
  begin           enter the maze

In the maze:
  w a s d         move north, west, south, east (several at once: "ddss")
  hint            ask which way the shortest route goes
  map             reveal the whole maze and the optimal path

Any time:
  again           start over with a new maze
  help            show this text
  quit            leave`

// Shell runs one engine over a reader and a writer.
type Shell struct {
	eng  *engine.Engine
	sess *engine.Session
	in   *bufio.Scanner
	out  io.Writer
}

func New(eng *engine.Engine, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		eng:  eng,
		sess: eng.NewSession(),
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Session is the playthrough in progress.
func (sh *Shell) Session() *engine.Session { return sh.sess }

// Run reads commands until quit or end of input.
func (sh *Shell) Run(ctx context.Context) error {
	c := sh.eng.Catalog()
	sh.printf("%s\n%s\n\n", strings.ToUpper(c.Title), strings.Repeat("=", len(c.Title)))
	sh.printf("You may carry a burden weighing at most %d. Type 'help' for commands.\n\n", c.Capacity)
	sh.list()

	for {
		sh.printf("\n%s> ", sh.sess.Phase())
		if !sh.in.Scan() {
			return sh.in.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if sh.exec(ctx, sh.in.Text()) {
			return nil
		}
	}
}

// exec runs one command line and reports whether the player quit.
func (sh *Shell) exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, arg := strings.ToLower(fields[0]), strings.Join(fields[1:], " ")

	switch cmd {
	case "quit", "q", "exit":
		sh.printf("The void remembers you.\n")
		return true
	case "help", "h", "?":
		sh.printf("%s\n", helpText)
	case "list", "ls":
		sh.list()
	case "take", "t", "drop":
		sh.take(arg)
	case "solve":
		sh.solve()
	case "show":
		sh.show()
	case "clear":
		sh.report(sh.sess.Clear())
	case "begin", "enter":
		sh.begin()
	case "hint":
		sh.hint()
	case "map", "m":
		sh.printMap(true)
		sh.printf("Legend: @ you, E exit, * optimal path, . your trail, # wall\n")
	case "again", "reset", "restart":
		sh.sess.Reset()
		sh.printf("The asylum shifts. Choose again.\n\n")
		sh.list()
	default:
		if isMoves(cmd) {
			sh.moves(ctx, cmd)
			return false
		}
		sh.printf("Unknown command %q. The void whispers mockingly... (try 'help')\n", fields[0])
	}
	return false
}

func (sh *Shell) printf(format string, args ...any) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *Shell) report(err error) {
	if err != nil {
		sh.printf("%v\n", err)
	}
}

func (sh *Shell) list() {
	c := sh.eng.Catalog()
	sel := sh.sess.Selection()
	for i, it := range c.Items {
		mark := " "
		if sel.Has(it.ID) {
			mark = "x"
		}
		sh.printf("%3d. [%s] %-22s %-6s weight %2d  value %2d  %s\n",
			i+1, mark, it.Name, it.Kind, it.Weight, it.Value, it.Description)
	}
}

func (sh *Shell) take(arg string) {
	it, err := sh.eng.Catalog().Lookup(arg)
	if err != nil {
		sh.printf("%v\n", err)
		return
	}
	if err := sh.sess.Toggle(it.ID); err != nil {
		sh.printf("%v\n", err)
		return
	}
	if !sh.sess.Selection().Has(it.ID) {
		sh.printf("You set down %s.\n", it.Name)
		return
	}
	sh.printf("You take up %s.\n", it.Name)
	if it.Narrative != "" {
		sh.printf("  %s\n", it.Narrative)
	}
}

func (sh *Shell) solve() {
	res, err := sh.sess.Solve()
	if err != nil {
		sh.printf("%v\n", err)
		return
	}
	sh.printf("The algorithm weighs every combination and chooses (value %d, weight %d):\n", res.TotalValue, res.TotalWeight)
	for _, it := range sh.sess.Selection().Items() {
		sh.printf("  - %s\n", it.Name)
	}
}

func (sh *Shell) show() {
	sel := sh.sess.Selection()
	if sel.Len() == 0 {
		sh.printf("You carry nothing.\n")
	}
	for _, it := range sel.Items() {
		sh.printf("  - %s (%s, weight %d, value %d)\n", it.Name, it.Kind, it.Weight, it.Value)
	}
	sh.printf("Weight %d of %d, value %d", sel.Weight(), sel.Capacity(), sel.Value())
	if sh.eng.Catalog().Mode == models.ModeJudgment {
		sh.printf(", moral balance %+d", sel.Balance())
	}
	sh.printf("\n")
}

func (sh *Shell) begin() {
	if err := sh.sess.Begin(); err != nil {
		sh.printf("%v\n", err)
		return
	}
	sh.printf("You step into the maze your choices have built. Find the exit.\n\n")
	sh.printMap(false)
}

func (sh *Shell) hint() {
	d, ok := sh.sess.Hint()
	if !ok {
		sh.printf("No whisper answers.\n")
		return
	}
	sh.printf("A whisper: go %s.\n", d)
}

func isMoves(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("wasd", r) {
			return false
		}
	}
	return s != ""
}

func (sh *Shell) moves(ctx context.Context, keys string) {
	for _, r := range keys {
		d, _ := engine.ParseDirection(string(r))
		step, err := sh.sess.Move(d)
		if err != nil {
			sh.printf("%v\n", err)
			break
		}
		if step.Omen != "" {
			sh.printf("%s...\n", step.Omen)
		}
		if step.Arrived {
			sh.judge(ctx)
			return
		}
	}
	if sh.sess.Phase() == engine.Playing {
		sh.printMap(false)
	}
}

func (sh *Shell) judge(ctx context.Context) {
	v, err := sh.sess.Verdict()
	if err != nil {
		sh.printf("%v\n", err)
		return
	}
	sh.printMap(true)
	text, err := sh.eng.Narrator().Narrate(ctx, v, sh.sess.Selection().Items())
	if err != nil {
		text = strings.Join(v.Lines, "\n")
	}
	sh.printf("\n=== %s ===\n%s\n\n", v.Title, text)
	sh.printf("Steps taken %d, optimal %d, efficiency %.2f, score %.1f\n",
		v.PlayerSteps, v.OptimalSteps, v.Efficiency, v.Score)
	sh.printf("Type 'again' to be judged anew or 'quit' to leave.\n")
}

func (sh *Shell) printMap(reveal bool) {
	if sh.sess.Maze() == nil {
		sh.printf("%v\n", engine.ErrNotPlaying)
		return
	}
	for _, line := range strings.Split(sh.sess.Render(reveal), "\n") {
		sh.printf("    %s\n", line)
	}
}
