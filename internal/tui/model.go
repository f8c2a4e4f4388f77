// Package tui provides the BubbleTea-based clock display.
package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tickclock/ticktock/internal/clock"
	"github.com/tickclock/ticktock/internal/theme"
)

// tickMsg carries the wall-clock time sampled at a timer firing.
type tickMsg time.Time

// themeChangedMsg carries a re-resolved theme from the file watcher.
type themeChangedMsg theme.Theme

// Styles is the pair of lipgloss styles derived from a resolved theme.
// It is owned by the model; nothing else mutates it.
type Styles struct {
	Screen lipgloss.Style
	Digits lipgloss.Style
}

// NewStyles derives display styles from a resolved theme.
func NewStyles(t theme.Theme) Styles {
	bg := lipgloss.Color(t.Background)
	fg := lipgloss.Color(t.Foreground)
	return Styles{
		Screen: lipgloss.NewStyle().Background(bg),
		Digits: lipgloss.NewStyle().Foreground(fg).Background(bg),
	}
}

// Model is the clock TUI model.
type Model struct {
	theme  theme.Theme
	styles Styles
	opts   clock.Options
	keys   KeyMap

	// State
	now    time.Time
	width  int
	height int
	ready  bool

	// Hot-reload subscription, nil when the watcher is disabled
	themeCh <-chan theme.Theme
}

// New creates a clock model for a resolved theme. The theme is passed in
// explicitly; the model owns the derived styles.
func New(t theme.Theme, opts clock.Options) Model {
	return Model{
		theme:  t,
		styles: NewStyles(t),
		opts:   opts,
		keys:   DefaultKeyMap(),
		now:    time.Now(),
	}
}

// tick schedules the next refresh on the upcoming second boundary.
func tick(now time.Time) tea.Cmd {
	return tea.Tick(clock.NextTick(now), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init renders immediately (the model already holds the current time) and
// arms the repeating one-second timer.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick(m.now)}
	if m.themeCh != nil {
		cmds = append(cmds, m.waitForThemeChange)
	}
	return tea.Batch(cmds...)
}

// waitForThemeChange blocks on the watcher channel and forwards the next
// re-resolved theme into the update loop.
func (m Model) waitForThemeChange() tea.Msg {
	t, ok := <-m.themeCh
	if !ok {
		return nil
	}
	return themeChangedMsg(t)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case tickMsg:
		m.now = time.Time(msg)
		return m, tick(m.now)

	case themeChangedMsg:
		m.theme = theme.Theme(msg)
		m.styles = NewStyles(m.theme)
		return m, m.waitForThemeChange
	}

	return m, nil
}

// View renders the clock face centered in the window, with the whitespace
// around it painted in the theme background.
func (m Model) View() string {
	face := m.styles.Digits.Render(clock.Render(clock.Format(m.now, m.opts)))

	if !m.ready {
		return face
	}

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		face,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}

// RunOptions configures Run.
type RunOptions struct {
	Theme   theme.Theme
	Clock   clock.Options
	Watcher *theme.Watcher // optional themes-file hot reload
}

// Run starts the clock display and blocks until the user quits.
func Run(opts RunOptions) error {
	m := New(opts.Theme, opts.Clock)

	if opts.Watcher != nil {
		if err := opts.Watcher.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to start themes watcher: %v\n", err)
		} else {
			m.themeCh = opts.Watcher.Updates()
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()

	if opts.Watcher != nil {
		opts.Watcher.Stop()
	}

	return err
}
