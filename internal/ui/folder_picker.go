package ui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FolderPicker is the "open folder" dialog: a directory-only file picker.
// Enter picks the highlighted directory, right or l browses into it, "."
// picks the directory being browsed and esc cancels.
type FolderPicker struct {
	picker  filepicker.Model
	visible bool
	width   int
	height  int
}

// NewFolderPicker creates a hidden picker.
func NewFolderPicker() FolderPicker {
	return FolderPicker{}
}

// Show opens the dialog browsing start and returns the command that reads
// its first listing.
func (p *FolderPicker) Show(start string) tea.Cmd {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	fp.CurrentDirectory = start
	// AutoHeight sizes the list from the window size message.
	fp, _ = fp.Update(tea.WindowSizeMsg{Width: p.width, Height: p.height - 4})

	p.picker = fp
	p.visible = true
	return fp.Init()
}

// SetSize records the terminal size for the next Show.
func (p *FolderPicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// IsVisible reports whether the dialog is open.
func (p FolderPicker) IsVisible() bool {
	return p.visible
}

// Update forwards input to the picker and reports a choice or cancellation.
func (p FolderPicker) Update(msg tea.Msg) (FolderPicker, tea.Cmd) {
	if !p.visible {
		return p, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			p.visible = false
			return p, func() tea.Msg { return FolderPickerCancelledMsg{} }
		case ".":
			p.visible = false
			dir := p.picker.CurrentDirectory
			return p, func() tea.Msg { return FolderChosenMsg{Path: dir} }
		}
	}

	// The picker records a selected directory in Path before descending into
	// it, so a changed Path is the selection signal.
	prev := p.picker.Path
	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)
	if path := p.picker.Path; path != "" && path != prev {
		p.visible = false
		return p, func() tea.Msg { return FolderChosenMsg{Path: path} }
	}
	return p, cmd
}

// View renders the dialog centred on screen.
func (p FolderPicker) View(theme *Theme) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ActiveBorder).Render("Open Folder")
	hint := lipgloss.NewStyle().Foreground(theme.Muted).Render("enter: choose • →/l: browse • . : choose " + p.picker.CurrentDirectory + " • esc: cancel")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ActiveBorder).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, hint, "", p.picker.View()))

	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, box)
}
