package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// StatusCategory tags a line in the status log.
type StatusCategory string

const (
	StatusCategoryError   StatusCategory = "error"
	StatusCategoryInfo    StatusCategory = "info"
	StatusCategorySuccess StatusCategory = "ok"
)

// StatusMessage is one line of the status log.
type StatusMessage struct {
	Category  StatusCategory
	Text      string
	Timestamp time.Time
}

// StatusMessages is the scrolling diagnostic log under the editor.
type StatusMessages struct {
	messages    []StatusMessage
	viewport    viewport.Model
	width       int
	height      int
	maxMessages int
	theme       *Theme
}

// NewStatusMessages creates an empty log keeping the last 100 lines.
func NewStatusMessages() *StatusMessages {
	return &StatusMessages{
		viewport:    viewport.New(0, 0),
		width:       80,
		height:      4,
		maxMessages: 100,
		theme:       DefaultDarkTheme(),
	}
}

// SetSize updates the component dimensions.
func (s *StatusMessages) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = height
	s.refresh()
}

// SetTheme re-renders the log with theme colors.
func (s *StatusMessages) SetTheme(theme *Theme) {
	s.theme = theme
	s.refresh()
}

// AddMessage appends a line and scrolls to it.
func (s *StatusMessages) AddMessage(category StatusCategory, text string) {
	s.messages = append(s.messages, StatusMessage{
		Category:  category,
		Text:      text,
		Timestamp: time.Now(),
	})
	if len(s.messages) > s.maxMessages {
		s.messages = s.messages[len(s.messages)-s.maxMessages:]
	}
	s.refresh()
}

// Messages returns the retained lines, oldest first.
func (s *StatusMessages) Messages() []StatusMessage {
	return s.messages
}

// Clear removes all messages.
func (s *StatusMessages) Clear() {
	s.messages = nil
	s.viewport.SetContent("")
}

// View renders the log.
func (s StatusMessages) View() string {
	if len(s.messages) == 0 {
		return lipgloss.NewStyle().
			Foreground(s.theme.Muted).
			Italic(true).
			Render("No messages")
	}
	return s.viewport.View()
}

func (s *StatusMessages) refresh() {
	s.viewport.SetContent(s.buildContent())
	s.viewport.GotoBottom()
}

func (s StatusMessages) buildContent() string {
	timeStyle := lipgloss.NewStyle().Foreground(s.theme.Muted)

	var b strings.Builder
	for i, msg := range s.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		color := s.theme.Info
		switch msg.Category {
		case StatusCategoryError:
			color = s.theme.Error
		case StatusCategorySuccess:
			color = s.theme.Success
		}
		tag := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("[%s]", strings.ToUpper(string(msg.Category))))
		fmt.Fprintf(&b, "%s %s %s", tag, timeStyle.Render(msg.Timestamp.Format("15:04:05")), msg.Text)
	}
	return b.String()
}
