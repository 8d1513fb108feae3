package ui

import "github.com/lumina/tui/internal/config"

const minTreeWidth = 10

// Options are the display settings the model starts with.
type Options struct {
	Theme           string
	ShowLineNumbers bool
	TreeWidth       int
	// StartDir is where the folder picker starts browsing when no folder
	// is open yet.
	StartDir string
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig maps the loaded configuration onto display options.
func OptionsFromConfig(cfg *config.Config) Options {
	start := cfg.Dir
	if start == "" {
		start = "."
	}
	return Options{
		Theme:           cfg.Theme,
		ShowLineNumbers: cfg.ShowLineNumbers,
		TreeWidth:       cfg.TreeWidth,
		StartDir:        start,
	}
}

func (o Options) withDefaults() Options {
	if o.TreeWidth < minTreeWidth {
		o.TreeWidth = minTreeWidth
	}
	if o.StartDir == "" {
		o.StartDir = "."
	}
	return o
}
