package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumina/tui/internal/controller"
)

// Pane represents the different panes in the UI
type Pane int

const (
	FileTreePane Pane = iota
	EditorPane
)

const (
	statusBarHeight = 1
	// logPaneHeight is the status log's outer height, borders included.
	logPaneHeight = 6
)

// Model is the bubbletea model. It owns widget state only; the tree and the
// editing session live in the controller and are read back through
// Snapshot after every dispatch.
type Model struct {
	// Application state
	activePane Pane
	width      int
	height     int
	ctrl       *controller.Controller
	frame      controller.Frame
	startDir   string

	// Panes
	fileTree       FileTree
	editor         textarea.Model
	editorText     editorText
	readOnly       bool
	editorWidth    int
	statusMessages *StatusMessages
	treeWidth      int

	// Status bar
	statusBar    string
	errorHandler *ErrorHandler
	keys         KeyMap
	help         help.Model

	// Overlays
	modal          Modal
	picker         FolderPicker
	commandPalette CommandPalette

	themeManager *ThemeManager
}

// NewModel creates the TUI model over ctrl. Any folder already opened on the
// controller is shown straight away.
func NewModel(ctrl *controller.Controller, opts Options) *Model {
	opts = opts.withDefaults()
	keys := DefaultKeyMap()

	editor := textarea.New()
	editor.Placeholder = "No file opened."
	editor.ShowLineNumbers = opts.ShowLineNumbers
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.Blur()

	themeManager := NewThemeManager()
	themeManager.SetTheme(opts.Theme)

	m := &Model{
		activePane:     FileTreePane,
		width:          80,
		height:         24,
		ctrl:           ctrl,
		startDir:       opts.StartDir,
		fileTree:       NewFileTree(keys),
		editor:         editor,
		statusMessages: NewStatusMessages(),
		treeWidth:      opts.TreeWidth,
		statusBar:      "Welcome to Lumina | Ctrl+O to open a folder, F1 for help",
		errorHandler:   NewErrorHandler(),
		keys:           keys,
		help:           help.New(),
		modal:          NewModal(),
		picker:         NewFolderPicker(),
		commandPalette: NewCommandPalette(),
		themeManager:   themeManager,
	}
	m.applyTheme()
	m.sync(true)
	m.updateComponentSizes()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textarea.Blink)
}

// GetTheme returns the active theme.
func (m Model) GetTheme() *Theme {
	return m.themeManager.GetTheme()
}

// updateComponentSizes recalculates component sizes based on current layout
func (m *Model) updateComponentSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentHeight := m.height - statusBarHeight
	treeWidth := min(m.treeWidth, max(m.width/2, minTreeWidth))
	m.editorWidth = max(m.width-treeWidth-4, 10) // 2 borders per pane

	// Tree pane: title and rule above the rows.
	m.fileTree.SetSize(treeWidth, max(contentHeight-4, 1))

	// Editor pane: title line, log pane below.
	m.editor.SetWidth(m.editorWidth)
	m.editor.SetHeight(max(contentHeight-logPaneHeight-3, 1))

	m.statusMessages.SetSize(m.editorWidth, logPaneHeight-2)
	m.help.Width = m.width

	m.modal.SetSize(m.width, m.height)
	m.picker.SetSize(m.width, m.height)
	m.commandPalette.SetSize(m.width, m.height)
}

// sync re-reads the controller state. loadBuffer replaces the editor text
// with the session buffer, which is only wanted after a file is opened.
//
// The textarea rewrites tabs, lone carriage returns and control characters.
// When it cannot show the buffer exactly, the editor turns read-only so the
// file is never saved with altered bytes.
func (m *Model) sync(loadBuffer bool) {
	m.frame = m.ctrl.Snapshot()
	m.fileTree.SetRows(m.frame.Rows)
	if loadBuffer {
		text, value := newEditorText(m.frame.Buffer)
		m.editor.SetValue(value)
		m.editorText = text
		m.readOnly = m.frame.FileOpen && text.toBuffer(m.editor.Value()) != m.frame.Buffer
	}
}

func (m *Model) applyTheme() {
	theme := m.themeManager.GetTheme()
	m.statusMessages.SetTheme(theme)

	lineNumber := lipgloss.NewStyle().Foreground(theme.Muted)
	m.editor.FocusedStyle.LineNumber = lineNumber
	m.editor.BlurredStyle.LineNumber = lineNumber
	m.editor.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(theme.Selection)
	m.editor.FocusedStyle.Placeholder = lineNumber
	m.editor.BlurredStyle.Placeholder = lineNumber
}
