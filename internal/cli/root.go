// Package cli is the lumina command line: it loads configuration, prepares
// logging and the controller, then runs the terminal UI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumina/tui/internal/config"
	"github.com/lumina/tui/internal/controller"
	"github.com/lumina/tui/internal/fsio"
	"github.com/lumina/tui/internal/logging"
	"github.com/lumina/tui/internal/ui"
)

// ErrNotInteractive is returned when stdin or stdout is not a terminal.
var ErrNotInteractive = errors.New("lumina needs an interactive terminal")

type rootOptions struct {
	configFile string
}

// NewRootCommand builds the lumina command.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "lumina [dir]",
		Short: "Terminal file browser and text editor",
		Long: `Lumina shows a folder as a collapsible tree and edits one text file at a time.

Open a folder with Ctrl+O (or pass it as an argument), pick a file with Enter,
edit it and save with Ctrl+S. F1 lists every shortcut.

Settings are read from ~/.lumina/config.yaml (or --config), LUMINA_* environment
variables and flags, in rising order of precedence.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default ~/.lumina/config.yaml)")
	flags.String("dir", "", "folder to open at startup")
	flags.String("theme", defaults.Theme, "color theme ("+strings.Join(ui.NewThemeManager().GetThemeNames(), ", ")+")")
	flags.Bool("line-numbers", defaults.ShowLineNumbers, "show line numbers in the editor")
	flags.Int("tree-width", defaults.TreeWidth, "width of the file tree pane in columns")
	flags.String("log-file", defaults.LogFile, "file receiving the log")
	flags.Bool("debug", false, "log at debug level")

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, err := config.Load(opts.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Dir = args[0]
	}

	themes := ui.NewThemeManager()
	if !themes.SetTheme(cfg.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(themes.GetThemeNames(), ", "))
	}

	if !isInteractive(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return ErrNotInteractive
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting lumina", "version", version, "config", cfg.ConfigFile, "dir", cfg.Dir)

	fs := fsio.NewOS()
	ctrl := controller.New(controller.NewState(fs), startupFolder(cfg.Dir), logger)
	startErr := ctrl.Dispatch(controller.PickFolder{})

	uiOpts := ui.OptionsFromConfig(cfg)
	if cfg.Dir == "" {
		if wd, err := os.Getwd(); err == nil {
			uiOpts.StartDir = wd
		}
	}

	model := ui.NewModel(ctrl, uiOpts)
	if startErr != nil {
		model.ReportError(startErr, "Open folder")
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited with error", "error", err)
		return fmt.Errorf("running terminal UI: %w", err)
	}
	logger.Info("lumina exited")
	return nil
}

// startupFolder answers the initial PickFolder with the directory given on
// the command line. No directory means the user cancelled.
func startupFolder(dir string) controller.FolderPicker {
	return controller.FolderPickerFunc(func() (string, bool) {
		if dir == "" {
			return "", false
		}
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
		return dir, true
	})
}

