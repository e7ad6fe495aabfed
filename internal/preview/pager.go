// Package preview shows a rendered markdown document in a scrollable
// full-screen pager.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 4 // header + footer lines around the viewport
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

type keyMap struct {
	Quit key.Binding
	Top  key.Binding
	End  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Top:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		End:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	}
}

// Model is the Bubble Tea model of the pager.
type Model struct {
	title    string
	markdown string
	viewport viewport.Model
	keys     keyMap
	width    int
}

// New builds a pager for markdown sized for a default terminal; the first
// WindowSizeMsg resizes it.
func New(title, markdown string) Model {
	m := Model{
		title:    title,
		markdown: markdown,
		viewport: viewport.New(defaultWidth, defaultHeight-chromeHeight),
		keys:     defaultKeys(),
		width:    defaultWidth,
	}
	m.viewport.SetContent(Render(markdown, defaultWidth))
	return m
}

// Render converts markdown to styled terminal text wrapped at width.
// The raw markdown is returned if the renderer fails.
func Render(markdown string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.End):
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		h := msg.Height - chromeHeight
		if h < 1 {
			h = 1
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = h
		if msg.Width != m.width {
			m.width = msg.Width
			m.viewport.SetContent(Render(m.markdown, msg.Width))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := headerStyle.Render(m.title)
	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • g/G top/bottom • q quit",
		m.viewport.ScrollPercent()*100))
	return strings.Join([]string{header, m.viewport.View(), footer}, "\n")
}

// Run shows markdown in the alternate screen until the user quits.
func Run(title, markdown string) error {
	p := tea.NewProgram(New(title, markdown), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
