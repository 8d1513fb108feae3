package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a scrollable read-only dialog drawn over the panes.
type Modal struct {
	title    string
	content  string
	visible  bool
	viewport viewport.Model
	width    int
	height   int
}

// NewModal creates a hidden modal.
func NewModal() Modal {
	return Modal{viewport: viewport.New(0, 0)}
}

// Show displays content under title.
func (m *Modal) Show(title, content string) {
	m.title = title
	m.content = content
	m.visible = true
	m.resize()
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// SetSize records the terminal size.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.resize()
}

func (m *Modal) resize() {
	m.viewport.Width = max(m.width-8, 20)
	m.viewport.Height = max(m.height-8, 5)
}

// Update scrolls the modal; esc, q or enter close it.
func (m Modal) Update(msg tea.Msg) (Modal, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "enter":
			m.visible = false
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the modal centred on screen.
func (m Modal) View(theme *Theme) string {
	if !m.visible {
		return ""
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ActiveBorder).Render(m.title)
	footer := lipgloss.NewStyle().Foreground(theme.Muted).Italic(true).Render("↑/↓ scroll • esc close")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ActiveBorder).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), footer))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// IsVisible returns whether the modal is visible.
func (m Modal) IsVisible() bool {
	return m.visible
}
