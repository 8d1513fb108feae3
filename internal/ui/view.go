package ui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemedStyles contains all UI styles based on the current theme
type ThemedStyles struct {
	activeStyle    lipgloss.Style
	inactiveStyle  lipgloss.Style
	titleStyle     lipgloss.Style
	mutedStyle     lipgloss.Style
	modifiedStyle  lipgloss.Style
	statusBarStyle lipgloss.Style
}

// getThemedStyles returns styles based on current theme
func (m Model) getThemedStyles() ThemedStyles {
	theme := m.GetTheme()

	return ThemedStyles{
		activeStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ActiveBorder),

		inactiveStyle: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Border),

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.TreeDirectory),

		mutedStyle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		modifiedStyle: lipgloss.NewStyle().
			Foreground(theme.Modified).
			Bold(true),

		statusBarStyle: lipgloss.NewStyle().
			Foreground(theme.StatusBarText).
			Background(theme.StatusBar),
	}
}

// View renders the entire UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	theme := m.GetTheme()

	// Overlays replace the panes while open.
	switch {
	case m.picker.IsVisible():
		return m.picker.View(theme)
	case m.commandPalette.IsVisible():
		return m.commandPalette.View(theme)
	case m.modal.IsVisible():
		return m.modal.View(theme)
	}

	styles := m.getThemedStyles()

	right := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderEditor(styles),
		m.renderStatusLog(styles),
	)
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.renderFileTree(styles), right)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar(styles))
}

// renderFileTree renders the file tree pane titled with the open folder.
func (m Model) renderFileTree(styles ThemedStyles) string {
	style := styles.inactiveStyle
	if m.activePane == FileTreePane {
		style = styles.activeStyle
	}

	title := "No folder"
	if m.frame.RootPath != "" {
		title = filepath.Base(m.frame.RootPath)
	}
	header := styles.titleStyle.Render(truncate("📁 "+title, m.fileTree.width)) + "\n" +
		strings.Repeat("─", m.fileTree.width)

	return style.
		Width(m.fileTree.width).
		Height(m.height - statusBarHeight - 2).
		Render(header + "\n" + m.fileTree.View(m.GetTheme()))
}

// renderEditor renders the editor pane, or the placeholder when no file is
// open.
func (m Model) renderEditor(styles ThemedStyles) string {
	style := styles.inactiveStyle
	if m.activePane == EditorPane {
		style = styles.activeStyle
	}

	var title, body string
	if m.frame.FileOpen {
		title = styles.titleStyle.Render(m.displayPath(m.frame.OpenPath))
		if m.frame.Modified {
			title += styles.modifiedStyle.Render(" ●")
		}
		if m.readOnly {
			title += styles.mutedStyle.Render(" [read-only]")
		}
		body = m.editor.View()
	} else {
		title = styles.titleStyle.Render("Editor")
		body = styles.mutedStyle.Render("No file opened.")
	}

	return style.
		Width(m.editorWidth).
		Height(m.height - statusBarHeight - logPaneHeight - 2).
		Render(title + "\n" + body)
}

// renderStatusLog renders the status messages pane
func (m Model) renderStatusLog(styles ThemedStyles) string {
	return styles.inactiveStyle.
		Width(m.editorWidth).
		Height(logPaneHeight - 2).
		Render(m.statusMessages.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar(styles ThemedStyles) string {
	status := " " + m.statusBar
	hints := m.help.ShortHelpView(m.keys.ShortHelp())

	padding := m.width - lipgloss.Width(status) - lipgloss.Width(hints) - 1
	if padding > 0 {
		status += strings.Repeat(" ", padding) + hints + " "
	} else {
		status = truncate(status, m.width)
	}

	return styles.statusBarStyle.Width(m.width).Render(status)
}

// displayPath shows path relative to the open folder when it lies inside it.
func (m Model) displayPath(path string) string {
	if m.frame.RootPath == "" {
		return path
	}
	rel, err := filepath.Rel(m.frame.RootPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
