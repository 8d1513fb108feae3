package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// HelpSection groups shortcuts under a heading.
type HelpSection struct {
	Title     string
	Shortcuts []KeyboardShortcut
}

// KeyboardShortcut is one line of the help table.
type KeyboardShortcut struct {
	Key         string
	Description string
}

var helpSections = []HelpSection{
	{
		Title: "Global",
		Shortcuts: []KeyboardShortcut{
			{"Ctrl+O", "Open a folder"},
			{"Ctrl+S", "Save the open file"},
			{"Tab", "Switch between tree and editor"},
			{"Ctrl+P", "Command palette"},
			{"Ctrl+T", "Next theme"},
			{"F1", "This help"},
			{"Ctrl+Q / Ctrl+C", "Quit"},
		},
	},
	{
		Title: "File Tree",
		Shortcuts: []KeyboardShortcut{
			{"↑↓ / j k", "Move"},
			{"Enter / Space", "Open file / toggle directory"},
			{"→ / l", "Expand directory"},
			{"← / h", "Collapse directory / go to parent"},
			{"g / G", "First / last entry"},
		},
	},
	{
		Title: "Open Folder dialog",
		Shortcuts: []KeyboardShortcut{
			{"Enter", "Choose the highlighted directory"},
			{"→ / l", "Browse into the highlighted directory"},
			{".", "Choose the directory being browsed"},
			{"← / h / Backspace", "Parent directory"},
			{"Esc", "Cancel"},
		},
	},
}

// buildHelpMarkdown renders the shortcut tables as markdown.
func buildHelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Lumina\n\n")
	for _, section := range helpSections {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", section.Title)
		for _, s := range section.Shortcuts {
			fmt.Fprintf(&b, "| `%s` | %s |\n", s.Key, s.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("Opening another file discards unsaved changes in the current one. Save first with **Ctrl+S**.\n")
	return b.String()
}

// renderHelp renders the help markdown for the terminal, falling back to the
// raw markdown if glamour cannot render it.
func renderHelp(theme *Theme, width int) string {
	md := buildHelpMarkdown()
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.MarkdownStyle),
		glamour.WithWordWrap(max(width, 40)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
