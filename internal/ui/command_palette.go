package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Command is an entry of the command palette.
type Command struct {
	Name     string
	Desc     string
	Shortcut string
	Action   string
}

// Implement list.Item interface
func (c Command) FilterValue() string { return c.Name + " " + c.Desc }
func (c Command) Title() string       { return c.Name }
func (c Command) Description() string {
	if c.Shortcut == "" {
		return c.Desc
	}
	return c.Desc + " (" + c.Shortcut + ")"
}

// Palette actions handled by Model.handleCommand.
const (
	ActionOpenFolder  = "open_folder"
	ActionSave        = "save_file"
	ActionCollapseAll = "collapse_all"
	ActionNextTheme   = "next_theme"
	ActionClearLog    = "clear_log"
	ActionHelp        = "help"
	ActionQuit        = "quit"
)

var paletteCommands = []Command{
	{Name: "Open Folder", Desc: "Choose a directory to browse", Shortcut: "Ctrl+O", Action: ActionOpenFolder},
	{Name: "Save File", Desc: "Write the editor buffer to disk", Shortcut: "Ctrl+S", Action: ActionSave},
	{Name: "Collapse All", Desc: "Collapse every directory in the tree", Action: ActionCollapseAll},
	{Name: "Next Theme", Desc: "Switch to the next color theme", Shortcut: "Ctrl+T", Action: ActionNextTheme},
	{Name: "Clear Messages", Desc: "Empty the status log", Action: ActionClearLog},
	{Name: "Show Help", Desc: "Display keyboard shortcuts", Shortcut: "F1", Action: ActionHelp},
	{Name: "Quit", Desc: "Exit Lumina", Shortcut: "Ctrl+Q", Action: ActionQuit},
}

// CommandPalette is a filterable list of commands.
type CommandPalette struct {
	textInput textinput.Model
	list      list.Model
	commands  []Command
	visible   bool
	width     int
	height    int
}

// NewCommandPalette creates a hidden palette with the built-in commands.
func NewCommandPalette() CommandPalette {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.CharLimit = 50
	ti.Width = 40

	items := make([]list.Item, len(paletteCommands))
	for i, cmd := range paletteCommands {
		items[i] = cmd
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 50, 14)
	l.Title = "Commands"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return CommandPalette{
		textInput: ti,
		list:      l,
		commands:  paletteCommands,
	}
}

// Update handles input while the palette is visible.
func (cp CommandPalette) Update(msg tea.Msg) (CommandPalette, tea.Cmd) {
	if !cp.visible {
		return cp, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "ctrl+p":
			cp.visible = false
			return cp, nil
		case "enter":
			cp.visible = false
			if selected, ok := cp.list.SelectedItem().(Command); ok {
				return cp, executeCommand(selected)
			}
			return cp, nil
		case "up", "down":
			var cmd tea.Cmd
			cp.list, cmd = cp.list.Update(msg)
			return cp, cmd
		}
	}

	var cmd tea.Cmd
	prev := cp.textInput.Value()
	cp.textInput, cmd = cp.textInput.Update(msg)
	if cp.textInput.Value() != prev {
		cp.filterCommands()
	}
	return cp, cmd
}

// View renders the palette centred on screen.
func (cp CommandPalette) View(theme *Theme) string {
	if !cp.visible {
		return ""
	}

	dialog := lipgloss.NewStyle().
		Width(min(60, max(cp.width-4, 20))).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ActiveBorder).
		Padding(1).
		Render(cp.textInput.View() + "\n\n" + cp.list.View())

	return lipgloss.Place(cp.width, cp.height, lipgloss.Center, lipgloss.Center, dialog)
}

// Show displays the palette with an empty query.
func (cp *CommandPalette) Show() {
	cp.visible = true
	cp.textInput.SetValue("")
	cp.textInput.Focus()
	cp.filterCommands()
}

// Hide hides the palette.
func (cp *CommandPalette) Hide() {
	cp.visible = false
}

// IsVisible returns whether the palette is visible.
func (cp CommandPalette) IsVisible() bool {
	return cp.visible
}

// SetSize sizes the palette for the terminal.
func (cp *CommandPalette) SetSize(width, height int) {
	cp.width = width
	cp.height = height
	w := min(56, max(width-8, 16))
	cp.list.SetWidth(w)
	cp.textInput.Width = w
	cp.list.SetHeight(min(14, max(height-8, 4)))
}

func (cp *CommandPalette) filterCommands() {
	query := strings.ToLower(cp.textInput.Value())

	var items []list.Item
	for _, cmd := range cp.commands {
		if fuzzyMatch(query, strings.ToLower(cmd.Name+" "+cmd.Desc)) {
			items = append(items, cmd)
		}
	}
	cp.list.SetItems(items)
	cp.list.Select(0)
}

// fuzzyMatch reports whether query's characters appear in order in target.
func fuzzyMatch(query, target string) bool {
	if query == "" {
		return true
	}
	q := []rune(query)
	i := 0
	for _, char := range target {
		if char == q[i] {
			i++
			if i == len(q) {
				return true
			}
		}
	}
	return false
}

func executeCommand(cmd Command) tea.Cmd {
	return func() tea.Msg {
		return ExecuteCommandMsg{Command: cmd.Action}
	}
}
