package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumina/tui/internal/controller"
	"github.com/lumina/tui/internal/tree"
)

func sampleRows() []controller.Row {
	return []controller.Row{
		{ID: 1, Path: "/w/a.txt", Name: "a.txt", Kind: tree.File},
		{ID: 2, Path: "/w/sub", Name: "sub", Kind: tree.Directory, Expanded: true},
		{ID: 4, Path: "/w/sub/c.go", Name: "c.go", Kind: tree.File, Depth: 1},
		{ID: 3, Path: "/w/z.md", Name: "z.md", Kind: tree.File},
	}
}

func TestFileTreeNavigation(t *testing.T) {
	ft := NewFileTree(DefaultKeyMap())
	ft.SetRows(sampleRows())

	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if row, _ := ft.Selected(); row.Name != "z.md" {
		t.Errorf("Expected G to select last row, got %s", row.Name)
	}
	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyDown})
	if row, _ := ft.Selected(); row.Name != "z.md" {
		t.Errorf("Expected cursor to stop at the last row, got %s", row.Name)
	}
	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if row, _ := ft.Selected(); row.Name != "c.go" {
		t.Errorf("Expected k to move up, got %s", row.Name)
	}
	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if row, _ := ft.Selected(); row.Name != "a.txt" {
		t.Errorf("Expected g to select first row, got %s", row.Name)
	}
}

func TestFileTreeActivate(t *testing.T) {
	ft := NewFileTree(DefaultKeyMap())
	ft.SetRows(sampleRows())
	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := ft.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected a command from enter")
	}
	msg, ok := cmd().(NodeActivatedMsg)
	if !ok || msg.ID != 2 {
		t.Errorf("Expected NodeActivatedMsg for node 2, got %#v", msg)
	}
}

func TestFileTreeCollapseExpanded(t *testing.T) {
	ft := NewFileTree(DefaultKeyMap())
	ft.SetRows(sampleRows())
	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := ft.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if cmd == nil {
		t.Fatal("Expected a collapse command")
	}
	if msg := cmd().(NodeExpandMsg); msg.ID != 2 || msg.Expand {
		t.Errorf("Expected collapse of node 2, got %#v", msg)
	}

	// Already expanded: right does nothing.
	if _, cmd := ft.Update(tea.KeyMsg{Type: tea.KeyRight}); cmd != nil {
		t.Error("Expected no command when expanding an expanded directory")
	}
}

func TestFileTreeSetRowsKeepsCursor(t *testing.T) {
	ft := NewFileTree(DefaultKeyMap())
	ft.SetRows(sampleRows())
	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})

	// sub collapsed: c.go disappears, z.md moves up.
	rows := sampleRows()
	rows[1].Expanded = false
	ft.SetRows(append(rows[:2], rows[3]))
	if row, _ := ft.Selected(); row.Name != "z.md" {
		t.Errorf("Expected cursor to follow z.md, got %s", row.Name)
	}

	ft.Reset()
	if _, ok := ft.Selected(); ok {
		t.Error("Expected no selection after Reset")
	}
}

func TestFileTreeView(t *testing.T) {
	theme := DefaultDarkTheme()
	ft := NewFileTree(DefaultKeyMap())

	if !strings.Contains(ft.View(theme), "No folder opened.") {
		t.Error("Expected placeholder for an empty tree")
	}

	ft.SetRows(sampleRows())
	ft.SetSize(30, 10)
	view := ft.View(theme)
	for _, want := range []string{"a.txt", "▾", "sub", "c.go"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}
}

func TestFileTreeViewScrolls(t *testing.T) {
	ft := NewFileTree(DefaultKeyMap())
	ft.SetRows(sampleRows())
	ft.SetSize(30, 2)
	ft, _ = ft.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})

	view := ft.View(DefaultDarkTheme())
	if strings.Contains(view, "a.txt") {
		t.Error("Expected first row to scroll out of view")
	}
	if !strings.Contains(view, "z.md") {
		t.Error("Expected selected row to be visible")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("a-very-long-name.txt", 8); got != "a-very-…" {
		t.Errorf("got %q", got)
	}
}
