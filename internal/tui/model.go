// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mqzpt/koalatype/internal/generator"
	"github.com/mqzpt/koalatype/internal/model"
	"github.com/mqzpt/koalatype/internal/score"
	"github.com/mqzpt/koalatype/internal/session"
	"github.com/mqzpt/koalatype/internal/wordpack"
)

const tickInterval = 100 * time.Millisecond

var (
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#98C379"))
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	untypedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle   = untypedStyle.Copy().Underline(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#56B6C2"))

	resultsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#56B6C2")).
			Padding(1, 3)
	resultTitleStyle = headerStyle.Copy().Bold(true)
	resultValueStyle = lipgloss.NewStyle().Bold(true)
)

type phase int

const (
	phaseTyping phase = iota
	phaseResults
)

type typingKeyMap struct {
	Finish key.Binding
	Quit   key.Binding
}

func (k typingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Finish, k.Quit}
}

func (k typingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Finish, k.Quit}}
}

type resultsKeyMap struct {
	Repeat key.Binding
	New    key.Binding
	Quit   key.Binding
}

func (k resultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Repeat, k.New, k.Quit}
}

func (k resultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Repeat, k.New, k.Quit}}
}

var typingKeys = typingKeyMap{
	Finish: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "end test"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

var resultsKeys = resultsKeyMap{
	Repeat: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "repeat"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new words"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model implements the Bubble Tea typing UI. It owns the current prompt and
// transcript, the countdown, and the results screen shown after each run.
type Model struct {
	config model.Config
	pack   wordpack.Pack

	width  int
	height int

	phase     phase
	state     session.State
	clock     session.Clock
	countdown timer.Model

	result     score.Result
	hasResult  bool
	elapsed    time.Duration
	transcript string

	help help.Model
}

// NewModel constructs a typing TUI model. The first prompt is generated here
// so configuration problems surface before the terminal enters raw mode.
func NewModel(cfg model.Config, pack wordpack.Pack) (*Model, error) {
	m := &Model{
		config: cfg,
		pack:   pack,
		help:   help.New(),
	}
	if err := m.reset(cfg.Seed); err != nil {
		return nil, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	// The clock set by NewModel predates the program starting; restart it so
	// the countdown begins when the screen does.
	m.clock = session.StartClock(m.config.Duration)
	return m.countdown.Init()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state, _ = m.state.Apply(session.ResizeEvent{})
		return m, nil
	case timer.TickMsg:
		if m.phase != phaseTyping {
			return m, nil
		}
		if m.clock.Expired() {
			m.finish()
			return m, nil
		}
		m.state, _ = m.state.Apply(session.TickEvent{})
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		if m.phase == phaseTyping {
			m.finish()
		}
		return m, nil
	case tea.KeyMsg:
		if m.phase == phaseResults {
			return m.updateResults(msg)
		}
		return m.updateTyping(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.finish()
		return m, nil
	case tea.KeyBackspace, tea.KeyDelete:
		m.state, _ = m.state.Apply(session.BackspaceEvent{})
		return m, nil
	case tea.KeySpace:
		var done bool
		m.state, done = m.state.Apply(session.AdvanceEvent{})
		if done {
			m.finish()
		}
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				continue
			}
			m.state, _ = m.state.Apply(session.CharEvent{Rune: r})
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, resultsKeys.Repeat):
		return m.restart(m.config.Seed)
	case key.Matches(msg, resultsKeys.New):
		return m.restart(nil)
	case key.Matches(msg, resultsKeys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) restart(seed *int64) (tea.Model, tea.Cmd) {
	if err := m.reset(seed); err != nil {
		logErrf("failed to generate prompt: %v\n", err)
		return m, tea.Quit
	}
	return m, m.countdown.Init()
}

// reset generates a fresh prompt and rearms the countdown. A nil seed draws
// new words; a non-nil seed replays that seed's sequence.
func (m *Model) reset(seed *int64) error {
	gen := generator.New()
	if seed != nil {
		gen = generator.NewSeeded(*seed)
	}
	words, err := gen.Prompt(m.pack.Words, m.config.Words, m.config.CapsPct, m.config.PunctPct, []rune(m.config.PunctSet))
	if err != nil {
		return err
	}
	m.state = session.New(words)
	m.clock = session.StartClock(m.config.Duration)
	m.countdown = timer.NewWithInterval(m.config.Duration, tickInterval)
	m.phase = phaseTyping
	return nil
}

// finish scores whatever has been typed so far and switches to the results
// screen. Elapsed time is capped at the configured duration so a run that
// overshot its final tick does not deflate the WPM.
func (m *Model) finish() {
	m.elapsed = m.clock.Final()
	m.transcript = m.state.Transcript()
	prompt := strings.Join(m.state.Prompt(), " ")
	m.result = score.Score(prompt, m.transcript, m.elapsed)
	m.hasResult = true
	m.phase = phaseResults
}

// LastResult reports the most recently completed run, if any run finished.
func (m *Model) LastResult() (score.Result, bool) {
	return m.result, m.hasResult
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
