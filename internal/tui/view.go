package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/asylum-of-sins/internal/engine"
	"github.com/tatianab/asylum-of-sins/internal/maze"
	"github.com/tatianab/asylum-of-sins/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B22222")).
			Bold(true).
			Underline(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true)

	sinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CC3333"))
	virtueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0C060"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	tileStyles = map[engine.Tile]lipgloss.Style{
		engine.TileFog:      lipgloss.NewStyle().Foreground(lipgloss.Color("#222222")),
		engine.TileWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("#555566")),
		engine.TileFloor:    lipgloss.NewStyle(),
		engine.TileTrail:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")),
		engine.TileOptimal:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3399FF")).Bold(true),
		engine.TileObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600")),
		engine.TileGoal:     lipgloss.NewStyle().Foreground(lipgloss.Color("#33CC33")).Bold(true),
		engine.TilePlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	}
)

func (m model) View() string {
	var s string

	switch m.state {
	case stateIntro:
		c := m.engine.Catalog()
		s = fmt.Sprintf(
			"%s\n\n%s\n%s\n\n%s\n\n%s",
			titleStyle.Render(strings.ToUpper(c.Title)),
			"Before judgment you will choose what to carry. The maze is built from your choices.",
			"Name the seed of your maze:",
			m.textInput.View(),
			statusStyle.Render(m.status),
		)

	case stateSelecting:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.renderSelection(),
			"",
			statusStyle.Render(m.status),
			"",
			m.help.ShortHelpView(keys.selecting()),
		)

	case stateMaze:
		board := lipgloss.JoinHorizontal(lipgloss.Top,
			renderMap(m.session.View(m.reveal)),
			"  ",
			m.renderPanel(),
		)
		s = lipgloss.JoinVertical(lipgloss.Left,
			board,
			"",
			statusStyle.Render(m.status),
			"",
			m.help.ShortHelpView(keys.playing()),
		)

	case stateJudging:
		s = "\n  The scales are weighing your soul... please wait.\n"

	case stateJudgment:
		s = lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			"",
			m.help.ShortHelpView(keys.judged()),
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress any key to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderSelection() string {
	c := m.engine.Catalog()
	sel := m.session.Selection()

	var b strings.Builder
	b.WriteString(titleStyle.Render("CHOOSE YOUR BURDEN"))
	fmt.Fprintf(&b, "\nCarrying %d of %d", sel.Weight(), sel.Capacity())
	if c.Mode == models.ModeJudgment {
		fmt.Fprintf(&b, "  moral balance %+d", sel.Balance())
	} else {
		fmt.Fprintf(&b, "  consequence %d", sel.Value())
	}
	b.WriteString("\n\n")

	for i, it := range c.Items {
		mark := "[ ]"
		if sel.Has(it.ID) {
			mark = "[x]"
		}
		kind := sinStyle
		if it.Kind == models.Virtue {
			kind = virtueStyle
		}
		line := fmt.Sprintf("%s %-22s w%-3d v%-3d", mark, it.Name, it.Weight, it.Value)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		} else if !sel.Fits(it) {
			line = helpStyle.Render(line)
		} else {
			line = kind.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if m.cursor < len(c.Items) {
		b.WriteString("\n" + helpStyle.Render(c.Items[m.cursor].Description))
	}
	return b.String()
}

func renderMap(rows [][]engine.MapCell) string {
	var b strings.Builder
	for y, row := range rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteString(tileStyles[c.Tile].Render(string(c.Rune())))
		}
	}
	return b.String()
}

func (m model) renderPanel() string {
	sel := m.session.Selection()
	trail := m.session.Trail()

	var b strings.Builder
	b.WriteString(titleStyle.Render("STEPS") + "\n")
	fmt.Fprintf(&b, "%d taken\n\n", trail.Steps())

	b.WriteString(titleStyle.Render("BURDEN") + "\n")
	if sel.Len() == 0 {
		b.WriteString("(nothing)\n")
	}
	for _, it := range sel.Items() {
		b.WriteString("- " + it.Name + "\n")
	}

	if obstacles := m.session.Maze().Obstacles; len(obstacles) > 0 {
		b.WriteString("\n" + titleStyle.Render("OMENS") + "\n")
		seen := map[maze.Obstacle]bool{}
		for _, it := range sel.Items() {
			if it.Obstacle == "" || seen[it.Obstacle] {
				continue
			}
			seen[it.Obstacle] = true
			fmt.Fprintf(&b, "%c %s\n", it.Obstacle.Glyph(), it.Name)
		}
	}
	b.WriteString("\n@ you  E exit")
	return panelStyle.Render(b.String())
}

func (m model) renderJudgment(narration string) string {
	v, err := m.session.Verdict()
	if err != nil {
		return err.Error()
	}
	width := m.viewport.Width
	if width <= 0 {
		width = 72
	}
	body := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Title) + "\n\n")
	b.WriteString(body.Render(narration) + "\n\n")
	fmt.Fprintf(&b, "Steps taken:   %d\n", v.PlayerSteps)
	fmt.Fprintf(&b, "Optimal steps: %d\n", v.OptimalSteps)
	fmt.Fprintf(&b, "Efficiency:    %.2f\n", v.Efficiency)
	fmt.Fprintf(&b, "Score:         %.1f\n\n", v.Score)
	b.WriteString(renderMap(m.session.View(true)))
	return b.String()
}
