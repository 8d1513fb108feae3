package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a color scheme for the panes, tree and status bar.
type Theme struct {
	Name        string
	Description string

	// Glamour style used for the help modal: "dark" or "light".
	MarkdownStyle string

	Border       lipgloss.Color
	ActiveBorder lipgloss.Color

	StatusBar     lipgloss.Color
	StatusBarText lipgloss.Color
	Selection     lipgloss.Color

	TreeDirectory lipgloss.Color
	TreeFile      lipgloss.Color
	TreeSelected  lipgloss.Color

	Modified lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Info     lipgloss.Color
	Success  lipgloss.Color
}

// ThemeManager holds the registered themes and the current one.
type ThemeManager struct {
	themes       map[string]*Theme
	currentTheme string
}

// NewThemeManager returns a manager with the built-in themes, "dark" active.
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes:       make(map[string]*Theme),
		currentTheme: "dark",
	}
	tm.RegisterTheme(DefaultDarkTheme())
	tm.RegisterTheme(DefaultLightTheme())
	tm.RegisterTheme(SolarizedDarkTheme())
	tm.RegisterTheme(DraculaTheme())
	return tm
}

// RegisterTheme adds or replaces a theme.
func (tm *ThemeManager) RegisterTheme(theme *Theme) {
	tm.themes[theme.Name] = theme
}

// SetTheme switches themes; it reports false for an unknown name.
func (tm *ThemeManager) SetTheme(name string) bool {
	if _, exists := tm.themes[name]; exists {
		tm.currentTheme = name
		return true
	}
	return false
}

// GetTheme returns the current theme.
func (tm *ThemeManager) GetTheme() *Theme {
	if theme, exists := tm.themes[tm.currentTheme]; exists {
		return theme
	}
	return DefaultDarkTheme()
}

// GetThemeNames returns the registered theme names in sorted order.
func (tm *ThemeManager) GetThemeNames() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentThemeName returns the active theme's name.
func (tm *ThemeManager) GetCurrentThemeName() string {
	return tm.currentTheme
}

// CycleTheme activates the next theme in name order and returns its name.
func (tm *ThemeManager) CycleTheme() string {
	names := tm.GetThemeNames()
	for i, name := range names {
		if name == tm.currentTheme {
			tm.currentTheme = names[(i+1)%len(names)]
			return tm.currentTheme
		}
	}
	tm.currentTheme = names[0]
	return tm.currentTheme
}

func DefaultDarkTheme() *Theme {
	return &Theme{
		Name:          "dark",
		Description:   "Default dark theme",
		MarkdownStyle: "dark",
		Border:        lipgloss.Color("240"),
		ActiveBorder:  lipgloss.Color("62"),
		StatusBar:     lipgloss.Color("237"),
		StatusBarText: lipgloss.Color("250"),
		Selection:     lipgloss.Color("240"),
		TreeDirectory: lipgloss.Color("33"),
		TreeFile:      lipgloss.Color("252"),
		TreeSelected:  lipgloss.Color("212"),
		Modified:      lipgloss.Color("214"),
		Muted:         lipgloss.Color("242"),
		Error:         lipgloss.Color("196"),
		Info:          lipgloss.Color("33"),
		Success:       lipgloss.Color("40"),
	}
}

func DefaultLightTheme() *Theme {
	return &Theme{
		Name:          "light",
		Description:   "Default light theme",
		MarkdownStyle: "light",
		Border:        lipgloss.Color("250"),
		ActiveBorder:  lipgloss.Color("33"),
		StatusBar:     lipgloss.Color("250"),
		StatusBarText: lipgloss.Color("235"),
		Selection:     lipgloss.Color("253"),
		TreeDirectory: lipgloss.Color("33"),
		TreeFile:      lipgloss.Color("235"),
		TreeSelected:  lipgloss.Color("39"),
		Modified:      lipgloss.Color("166"),
		Muted:         lipgloss.Color("245"),
		Error:         lipgloss.Color("160"),
		Info:          lipgloss.Color("33"),
		Success:       lipgloss.Color("28"),
	}
}

func SolarizedDarkTheme() *Theme {
	return &Theme{
		Name:          "solarized-dark",
		Description:   "Solarized Dark color scheme",
		MarkdownStyle: "dark",
		Border:        lipgloss.Color("#073642"),
		ActiveBorder:  lipgloss.Color("#268bd2"),
		StatusBar:     lipgloss.Color("#073642"),
		StatusBarText: lipgloss.Color("#93a1a1"),
		Selection:     lipgloss.Color("#073642"),
		TreeDirectory: lipgloss.Color("#268bd2"),
		TreeFile:      lipgloss.Color("#839496"),
		TreeSelected:  lipgloss.Color("#b58900"),
		Modified:      lipgloss.Color("#cb4b16"),
		Muted:         lipgloss.Color("#586e75"),
		Error:         lipgloss.Color("#dc322f"),
		Info:          lipgloss.Color("#268bd2"),
		Success:       lipgloss.Color("#859900"),
	}
}

func DraculaTheme() *Theme {
	return &Theme{
		Name:          "dracula",
		Description:   "Dracula color scheme",
		MarkdownStyle: "dracula",
		Border:        lipgloss.Color("#44475a"),
		ActiveBorder:  lipgloss.Color("#bd93f9"),
		StatusBar:     lipgloss.Color("#44475a"),
		StatusBarText: lipgloss.Color("#f8f8f2"),
		Selection:     lipgloss.Color("#44475a"),
		TreeDirectory: lipgloss.Color("#bd93f9"),
		TreeFile:      lipgloss.Color("#f8f8f2"),
		TreeSelected:  lipgloss.Color("#ff79c6"),
		Modified:      lipgloss.Color("#ffb86c"),
		Muted:         lipgloss.Color("#6272a4"),
		Error:         lipgloss.Color("#ff5555"),
		Info:          lipgloss.Color("#8be9fd"),
		Success:       lipgloss.Color("#50fa7b"),
	}
}
