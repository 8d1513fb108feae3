package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newShownPicker(t *testing.T) (FolderPicker, string) {
	t.Helper()
	dir := t.TempDir()
	p := NewFolderPicker()
	p.SetSize(120, 30)
	p.Show(dir)
	if !p.IsVisible() {
		t.Fatal("Expected picker to be visible after Show")
	}
	return p, dir
}

func TestFolderPickerHint(t *testing.T) {
	p, dir := newShownPicker(t)

	view := p.View(NewThemeManager().GetTheme())
	for _, want := range []string{"enter: choose", "→/l: browse", ". : choose " + dir, "esc: cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected hint %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, "open dir") {
		t.Error("Enter chooses a directory; the hint must not say it opens one")
	}
}

func TestFolderPickerDotChoosesCurrentDirectory(t *testing.T) {
	p, dir := newShownPicker(t)

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'.'}})
	if p.IsVisible() {
		t.Error("Expected picker to close")
	}
	if cmd == nil {
		t.Fatal("Expected a command")
	}
	chosen, ok := cmd().(FolderChosenMsg)
	if !ok || chosen.Path != dir {
		t.Errorf("Expected FolderChosenMsg{%s}, got %#v", dir, chosen)
	}
}

func TestFolderPickerEscCancels(t *testing.T) {
	p, _ := newShownPicker(t)

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.IsVisible() {
		t.Error("Expected picker to close")
	}
	if cmd == nil {
		t.Fatal("Expected a command")
	}
	if _, ok := cmd().(FolderPickerCancelledMsg); !ok {
		t.Error("Expected FolderPickerCancelledMsg")
	}
}
