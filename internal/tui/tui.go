package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/asylum-of-sins/internal/config"
	"github.com/tatianab/asylum-of-sins/internal/engine"
)

type sessionState int

const (
	stateIntro sessionState = iota
	stateSelecting
	stateMaze
	stateJudging
	stateJudgment
	stateError
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	session   *engine.Session
	textInput textinput.Model
	viewport  viewport.Model
	help      help.Model
	err       error
	cursor    int
	reveal    bool
	status    string
	width     int
	height    int
}

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "a number, or leave blank for a random maze"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 44

	return model{
		state:     stateIntro,
		engine:    eng,
		textInput: ti,
		viewport:  viewport.New(72, 16),
		help:      help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type narratedMsg struct {
	text string
	err  error
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = min(msg.Width-4, 80)
		m.viewport.Height = max(msg.Height-8, 5)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		switch m.state {
		case stateIntro:
			return m.updateIntro(msg)
		case stateSelecting:
			return m.updateSelecting(msg)
		case stateMaze:
			return m.updateMaze(msg)
		case stateJudgment:
			return m.updateJudgment(msg)
		case stateError:
			return m, tea.Quit
		}

	case narratedMsg:
		if msg.err != nil {
			log.Printf("narration: %v", msg.err)
		}
		m.state = stateJudgment
		m.viewport.SetContent(m.renderJudgment(msg.text))
		m.viewport.GotoTop()
		return m, nil
	}

	if m.state == stateIntro {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	raw := strings.TrimSpace(m.textInput.Value())
	if raw == "" {
		m.session = m.engine.NewSession()
	} else {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			m.status = fmt.Sprintf("%q is not a seed. Try a whole number.", raw)
			m.textInput.Reset()
			return m, nil
		}
		m.session = m.engine.NewSessionSeed(seed)
	}
	m.textInput.Blur()
	m.status = ""
	m.cursor = 0
	m.state = stateSelecting
	return m, nil
}

func (m model) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.engine.Catalog().Items
	m.status = ""
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Toggle):
		if len(items) == 0 {
			break
		}
		it := items[m.cursor]
		if err := m.session.Toggle(it.ID); err != nil {
			m.status = fmt.Sprintf("%s is too heavy to carry as well.", it.Name)
		} else if m.session.Selection().Has(it.ID) && it.Narrative != "" {
			m.status = it.Narrative
		}
	case key.Matches(msg, keys.Solve):
		res, err := m.session.Solve()
		if err != nil {
			m.status = err.Error()
			break
		}
		m.status = fmt.Sprintf("The algorithm chose a burden worth %d, weighing %d.", res.TotalValue, res.TotalWeight)
	case key.Matches(msg, keys.Clear):
		if err := m.session.Clear(); err != nil {
			m.status = err.Error()
		}
	case key.Matches(msg, keys.Begin):
		if err := m.session.Begin(); err != nil {
			m.status = capitalize(err.Error()) + "."
			break
		}
		m.reveal = false
		m.status = "You step into the maze your choices have built."
		m.state = stateMaze
	}
	return m, nil
}

func (m model) updateMaze(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var dir engine.Direction
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Again):
		return m.restart(), nil
	case key.Matches(msg, keys.Hint):
		if d, ok := m.session.Hint(); ok {
			m.status = fmt.Sprintf("A whisper: go %s.", d)
		}
		return m, nil
	case key.Matches(msg, keys.Map):
		m.reveal = !m.reveal
		if m.reveal {
			m.status = "The cosmic algorithm reveals the true structure..."
		} else {
			m.status = "But knowledge of the optimal path is a burden too."
		}
		return m, nil
	case key.Matches(msg, keys.North):
		dir = engine.North
	case key.Matches(msg, keys.South):
		dir = engine.South
	case key.Matches(msg, keys.East):
		dir = engine.East
	case key.Matches(msg, keys.West):
		dir = engine.West
	default:
		return m, nil
	}

	step, err := m.session.Move(dir)
	switch {
	case errors.Is(err, engine.ErrBlockedMove), errors.Is(err, engine.ErrOutOfBounds):
		m.status = capitalize(err.Error()) + "..."
		return m, nil
	case err != nil:
		m.err = err
		m.state = stateError
		return m, nil
	}
	m.status = ""
	if step.Omen != "" {
		m.status = step.Omen + "..."
	}
	if step.Arrived {
		m.state = stateJudging
		return m, m.narrate()
	}
	return m, nil
}

func (m model) updateJudgment(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Again):
		return m.restart(), nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// restart returns to the intro with a fresh seed prompt.
func (m model) restart() model {
	m.session = nil
	m.state = stateIntro
	m.status = ""
	m.reveal = false
	m.textInput.Reset()
	m.textInput.Focus()
	return m
}

func (m model) narrate() tea.Cmd {
	sess := m.session
	narrator := m.engine.Narrator()
	return func() tea.Msg {
		v, err := sess.Verdict()
		if err != nil {
			return narratedMsg{err: err}
		}
		text, err := narrator.Narrate(context.Background(), v, sess.Selection().Items())
		if err != nil {
			text = strings.Join(v.Lines, "\n")
		}
		return narratedMsg{text: text, err: err}
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Run shows the game until the player quits.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start loads the configuration from the environment and runs the game.
func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "asylum")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	eng, err := engine.Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer eng.Close()

	return Run(eng)
}
