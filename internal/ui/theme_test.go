package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeManager(t *testing.T) {
	tm := NewThemeManager()

	theme := tm.GetTheme()
	if theme.Name != "dark" {
		t.Errorf("Expected default theme 'dark', got '%s'", theme.Name)
	}

	if !tm.SetTheme("light") {
		t.Error("Failed to set light theme")
	}
	if tm.GetTheme().Name != "light" {
		t.Errorf("Expected theme 'light', got '%s'", tm.GetTheme().Name)
	}

	if tm.SetTheme("nonexistent") {
		t.Error("Should not be able to set nonexistent theme")
	}
	if tm.GetCurrentThemeName() != "light" {
		t.Error("Failed SetTheme must keep the current theme")
	}
}

func TestThemeStructure(t *testing.T) {
	for _, theme := range []*Theme{DefaultDarkTheme(), DefaultLightTheme(), SolarizedDarkTheme(), DraculaTheme()} {
		if theme.Border == lipgloss.Color("") {
			t.Errorf("Theme %s has empty border color", theme.Name)
		}
		if theme.TreeDirectory == lipgloss.Color("") || theme.TreeFile == lipgloss.Color("") {
			t.Errorf("Theme %s has empty tree colors", theme.Name)
		}
		if theme.MarkdownStyle == "" {
			t.Errorf("Theme %s has no markdown style", theme.Name)
		}
	}
}

func TestCycleTheme(t *testing.T) {
	tm := NewThemeManager()
	names := tm.GetThemeNames()
	expected := []string{"dark", "dracula", "light", "solarized-dark"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d themes, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected theme %d to be %s, got %s", i, name, names[i])
		}
	}

	seen := map[string]bool{tm.GetCurrentThemeName(): true}
	for range names {
		seen[tm.CycleTheme()] = true
	}
	if len(seen) != len(names) {
		t.Errorf("Cycling should visit every theme, visited %v", seen)
	}
	if tm.GetCurrentThemeName() != "dark" {
		t.Errorf("A full cycle should return to dark, got %s", tm.GetCurrentThemeName())
	}
}
