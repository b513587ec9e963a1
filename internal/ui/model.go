// Package ui hosts the interactive terminal display for the month view.
// It is a static presentation: the grid is rendered once and shown until
// a quit key is pressed.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/username/monthgrid/internal/view"
)

// KeyMap holds the key bindings understood by the display
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the standard quit bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model displays a rendered month view until the user quits
type Model struct {
	ref      time.Time
	renderer *view.Renderer
	keys     KeyMap
	logger   *zap.Logger

	content string
	err     error
	width   int
	height  int
}

// NewModel creates the display model for a reference date. The grid is
// rendered up front; a render failure is carried into the view as the
// user-visible notice.
func NewModel(ref time.Time, renderer *view.Renderer, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		ref:      ref,
		renderer: renderer,
		keys:     DefaultKeyMap(),
		logger:   logger,
	}

	m.content, m.err = renderer.Render(ref)
	if m.err != nil {
		logger.Warn("month view render failed", zap.Error(m.err))
	}

	return m
}

// Err returns the render error, if any
func (m Model) Err() error {
	return m.err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	body := m.content
	if m.err != nil {
		body = "Cannot display month: " + m.err.Error() + "\n"
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}
