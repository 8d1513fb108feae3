package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumina/tui/internal/controller"
	"github.com/lumina/tui/internal/tree"
)

// FileTree is the cursor and renderer over the visible tree rows. The rows
// themselves come from the controller each frame.
type FileTree struct {
	rows     []controller.Row
	selected int
	keys     KeyMap
	width    int
	height   int
}

// NewFileTree creates an empty file tree pane.
func NewFileTree(keys KeyMap) FileTree {
	return FileTree{keys: keys}
}

// SetRows replaces the visible rows, keeping the cursor on the same node when
// it is still visible.
func (ft *FileTree) SetRows(rows []controller.Row) {
	var current tree.NodeID = tree.NoNode
	if row, ok := ft.Selected(); ok {
		current = row.ID
	}

	ft.rows = rows
	for i, row := range rows {
		if row.ID == current {
			ft.selected = i
			return
		}
	}
	ft.clamp()
}

// Reset forgets the rows and cursor; used when a new folder replaces the tree.
func (ft *FileTree) Reset() {
	ft.rows = nil
	ft.selected = 0
}

// Selected returns the row under the cursor.
func (ft FileTree) Selected() (controller.Row, bool) {
	if ft.selected < 0 || ft.selected >= len(ft.rows) {
		return controller.Row{}, false
	}
	return ft.rows[ft.selected], true
}

// SetSize sets the inner dimensions of the pane.
func (ft *FileTree) SetSize(width, height int) {
	ft.width = width
	ft.height = height
}

// Update moves the cursor and turns enter/left/right into node messages.
func (ft FileTree) Update(msg tea.Msg) (FileTree, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(ft.rows) == 0 {
		return ft, nil
	}

	row := ft.rows[ft.selected]
	switch {
	case key.Matches(keyMsg, ft.keys.Up):
		if ft.selected > 0 {
			ft.selected--
		}
	case key.Matches(keyMsg, ft.keys.Down):
		if ft.selected < len(ft.rows)-1 {
			ft.selected++
		}
	case key.Matches(keyMsg, ft.keys.Top):
		ft.selected = 0
	case key.Matches(keyMsg, ft.keys.Bottom):
		ft.selected = len(ft.rows) - 1
	case key.Matches(keyMsg, ft.keys.Activate):
		return ft, nodeCmd(NodeActivatedMsg{ID: row.ID})
	case key.Matches(keyMsg, ft.keys.Expand):
		if row.Kind == tree.Directory && !row.Expanded {
			return ft, nodeCmd(NodeExpandMsg{ID: row.ID, Expand: true})
		}
	case key.Matches(keyMsg, ft.keys.Collapse):
		if row.Kind == tree.Directory && row.Expanded {
			return ft, nodeCmd(NodeExpandMsg{ID: row.ID, Expand: false})
		}
		// Jump to the enclosing directory: the nearest row above at a
		// shallower depth.
		for i := ft.selected - 1; i >= 0; i-- {
			if ft.rows[i].Depth < row.Depth {
				ft.selected = i
				break
			}
		}
	}
	return ft, nil
}

// View renders the visible window of rows.
func (ft FileTree) View(theme *Theme) string {
	if len(ft.rows) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("No folder opened.\n\nPress Ctrl+O to open one.")
	}

	visibleHeight := ft.height
	if visibleHeight < 1 {
		visibleHeight = len(ft.rows)
	}
	start := 0
	if ft.selected >= visibleHeight {
		start = ft.selected - visibleHeight + 1
	}
	end := min(start+visibleHeight, len(ft.rows))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, ft.renderItem(ft.rows[i], i == ft.selected, theme))
	}
	return strings.Join(lines, "\n")
}

func (ft FileTree) renderItem(row controller.Row, selected bool, theme *Theme) string {
	indent := strings.Repeat("  ", row.Depth)

	marker := "  "
	if row.Kind == tree.Directory {
		marker = "▸ "
		if row.Expanded {
			marker = "▾ "
		}
	}

	line := fmt.Sprintf("%s%s%s %s", indent, marker, fileIcon(row), row.Name)
	if ft.width > 0 {
		line = truncate(line, ft.width)
	}

	style := lipgloss.NewStyle().Foreground(theme.TreeFile)
	switch {
	case selected:
		style = lipgloss.NewStyle().Foreground(theme.TreeSelected).Background(theme.Selection).Bold(true)
	case row.Kind == tree.Directory:
		style = lipgloss.NewStyle().Foreground(theme.TreeDirectory)
	}
	return style.Render(line)
}

// fileIcon picks an icon from the directory state or file extension.
func fileIcon(row controller.Row) string {
	if row.Kind == tree.Directory {
		if row.Expanded {
			return "📂"
		}
		return "📁"
	}

	switch strings.ToLower(filepath.Ext(row.Name)) {
	case ".go":
		return "🐹"
	case ".rs":
		return "🦀"
	case ".py":
		return "🐍"
	case ".js", ".ts", ".jsx", ".tsx":
		return "📜"
	case ".md", ".markdown", ".txt":
		return "📝"
	case ".json", ".yaml", ".yml", ".toml":
		return "⚙️"
	case ".sh", ".bash":
		return "🐚"
	default:
		return "📄"
	}
}

func (ft *FileTree) clamp() {
	if ft.selected >= len(ft.rows) {
		ft.selected = len(ft.rows) - 1
	}
	if ft.selected < 0 {
		ft.selected = 0
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func nodeCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
