package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumina/tui/internal/controller"
	"github.com/lumina/tui/internal/editor"
)

// Update handles all state transitions
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateComponentSizes()
		return m, nil

	case FolderChosenMsg:
		return m.openFolder(msg.Path)

	case FolderPickerCancelledMsg:
		m.statusBar = "Open folder cancelled"
		return m, nil

	case NodeActivatedMsg:
		return m.activateNode(msg)

	case NodeExpandMsg:
		node, ok := m.ctrl.State().Tree.Node(msg.ID)
		if ok && node.Expanded != msg.Expand {
			if err := m.ctrl.Dispatch(controller.ToggleDirectory{Node: msg.ID}); err != nil {
				m.reportError(err, "Tree")
			}
			m.sync(false)
		}
		return m, nil

	case ExecuteCommandMsg:
		return m.handleCommand(msg)

	case ErrorMsg:
		m.reportError(msg.Err, msg.Component)
		return m, nil
	}

	// Anything else (directory listings, cursor blinks) belongs to a widget.
	var cmds []tea.Cmd
	if m.picker.IsVisible() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays take all input while open.
	if m.modal.IsVisible() {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}
	if m.picker.IsVisible() {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	if m.commandPalette.IsVisible() {
		var cmd tea.Cmd
		m.commandPalette, cmd = m.commandPalette.Update(msg)
		return m, cmd
	}

	// Global hotkeys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.OpenFolder):
		return m.showPicker()
	case key.Matches(msg, m.keys.Palette):
		m.commandPalette.Show()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp()
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		m.nextTheme()
		return m, nil
	case key.Matches(msg, m.keys.NextPane):
		return m.focusPane(m.nextPane())
	}

	// Handle pane-specific input
	switch m.activePane {
	case FileTreePane:
		var cmd tea.Cmd
		m.fileTree, cmd = m.fileTree.Update(msg)
		return m, cmd
	case EditorPane:
		return m.editKey(msg)
	}
	return m, nil
}

// editKey feeds a key to the editor widget and forwards the resulting text
// to the session when it changed, in the buffer's own line endings.
func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.frame.FileOpen {
		return m, nil
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	after := m.editor.Value()
	if after == before {
		return m, cmd
	}
	if m.readOnly {
		// Navigation keys pass through; edits are undone.
		m.editor.SetValue(before)
		m.statusBar = m.displayPath(m.frame.OpenPath) + " is read-only"
		return m, cmd
	}
	if err := m.ctrl.Dispatch(controller.Edit{Content: m.editorText.toBuffer(after)}); err != nil {
		m.reportError(err, "Editor")
	}
	m.sync(false)
	return m, cmd
}

func (m Model) openFolder(path string) (tea.Model, tea.Cmd) {
	if err := m.ctrl.Dispatch(controller.OpenFolder{Path: path}); err != nil {
		m.reportError(err, "Open folder")
		return m, nil
	}
	m.fileTree.Reset()
	m.sync(false)
	m.errorHandler.Reset()
	m.setStatus(StatusCategoryInfo, fmt.Sprintf("Opened %s (%d entries)", m.frame.RootPath, len(m.frame.Rows)))
	return m.focusPane(FileTreePane)
}

func (m Model) activateNode(msg NodeActivatedMsg) (tea.Model, tea.Cmd) {
	node, ok := m.ctrl.State().Tree.Node(msg.ID)
	if err := m.ctrl.Dispatch(controller.SelectFile{Node: msg.ID}); err != nil {
		m.reportError(err, "Open file")
		return m, nil
	}
	if !ok || node.IsDir() {
		m.sync(false)
		return m, nil
	}

	m.sync(true)
	m.errorHandler.Reset()
	if m.readOnly {
		m.setStatus(StatusCategoryInfo, "Opened "+m.frame.OpenPath+" read-only: it contains tabs or control characters the editor cannot keep")
	} else {
		m.setStatus(StatusCategoryInfo, "Opened "+m.frame.OpenPath)
	}
	return m.focusPane(EditorPane)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Dispatch(controller.Save{}); err != nil {
		m.reportError(err, "Save")
		return m, nil
	}
	m.sync(false)
	m.errorHandler.Reset()
	m.setStatus(StatusCategorySuccess, "Saved "+m.frame.OpenPath)
	return m, nil
}

func (m Model) showPicker() (tea.Model, tea.Cmd) {
	start := m.frame.RootPath
	if start == "" {
		start = m.startDir
	}
	m.commandPalette.Hide()
	cmd := m.picker.Show(start)
	return m, cmd
}

func (m *Model) showHelp() {
	m.modal.Show("Help", renderHelp(m.GetTheme(), m.width-12))
}

func (m *Model) nextTheme() {
	name := m.themeManager.CycleTheme()
	m.applyTheme()
	m.statusBar = "Theme: " + name
}

func (m Model) focusPane(p Pane) (tea.Model, tea.Cmd) {
	m.activePane = p
	if p == EditorPane && m.frame.FileOpen {
		cmd := m.editor.Focus()
		return m, cmd
	}
	m.editor.Blur()
	return m, nil
}

// nextPane returns the next pane in the tab cycle
func (m Model) nextPane() Pane {
	if m.activePane == FileTreePane {
		return EditorPane
	}
	return FileTreePane
}

// handleCommand runs a command palette action.
func (m Model) handleCommand(msg ExecuteCommandMsg) (tea.Model, tea.Cmd) {
	switch msg.Command {
	case ActionOpenFolder:
		return m.showPicker()
	case ActionSave:
		return m.save()
	case ActionCollapseAll:
		if err := m.ctrl.Dispatch(controller.CollapseAll{}); err != nil {
			m.reportError(err, "Tree")
		}
		m.sync(false)
	case ActionNextTheme:
		m.nextTheme()
	case ActionClearLog:
		m.statusMessages.Clear()
		m.errorHandler.Reset()
	case ActionHelp:
		m.showHelp()
	case ActionQuit:
		return m, tea.Quit
	default:
		m.statusBar = "Unknown command: " + msg.Command
	}
	return m, nil
}

// reportError shows err on the status bar and, unless it just repeated,
// in the status log.
func (m *Model) reportError(err error, component string) {
	message, repeat := m.errorHandler.HandleError(err, component)
	m.statusBar = message
	if repeat {
		return
	}
	category := StatusCategoryError
	if errors.Is(err, editor.ErrNoOpenFile) {
		category = StatusCategoryInfo
	}
	m.statusMessages.AddMessage(category, message)
}

func (m *Model) setStatus(category StatusCategory, text string) {
	m.statusBar = text
	m.statusMessages.AddMessage(category, text)
}

// ReportError shows err on the status bar as if component had failed. Used
// for failures that happen before the program starts.
func (m *Model) ReportError(err error, component string) {
	m.reportError(err, component)
}
