// Package controller turns view input into tree and session changes and
// exposes the state the view draws each frame.
package controller

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lumina/tui/internal/editor"
	"github.com/lumina/tui/internal/fsio"
	"github.com/lumina/tui/internal/tree"
)

var (
	// ErrUnknownNode is returned for events naming a node outside the active tree.
	ErrUnknownNode = errors.New("node is not in the current tree")
	// ErrUnknownEvent is returned by Dispatch for event types it does not handle.
	ErrUnknownEvent = errors.New("unknown event")
)

// FolderPicker is the "choose a directory" dialog. ok is false when the user
// cancelled.
type FolderPicker interface {
	PickFolder() (path string, ok bool)
}

// FolderPickerFunc adapts a function to FolderPicker.
type FolderPickerFunc func() (string, bool)

func (f FolderPickerFunc) PickFolder() (string, bool) { return f() }

// State is the application's mutable state: one active tree and one session,
// both backed by FS.
type State struct {
	FS      fsio.FileSystem
	Tree    *tree.Tree
	Session *editor.Session
}

// NewState returns the initial state over fs: no folder and no open file.
func NewState(fs fsio.FileSystem) *State {
	return &State{
		FS:      fs,
		Tree:    tree.New(),
		Session: editor.NewSession(fs),
	}
}

// Controller dispatches events against a State. All work happens
// synchronously on the caller's goroutine.
type Controller struct {
	state  *State
	picker FolderPicker
	logger *slog.Logger
}

// New returns a controller over state. Folders are read through state.FS.
// picker may be nil when folders are only ever opened with OpenFolder.
func New(state *State, picker FolderPicker, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		state:  state,
		picker: picker,
		logger: logger,
	}
}

// State returns the state the controller mutates.
func (c *Controller) State() *State {
	return c.state
}

// Dispatch applies one event. Failures are logged and returned; the state is
// left as it was before the failing operation.
func (c *Controller) Dispatch(ev Event) error {
	switch ev := ev.(type) {
	case PickFolder:
		return c.pickFolder()
	case OpenFolder:
		return c.openFolder(ev.Path)
	case ToggleDirectory:
		c.state.Tree.Toggle(ev.Node)
		return nil
	case SelectFile:
		return c.selectFile(ev.Node)
	case Edit:
		c.state.Session.Edit(ev.Content)
		return nil
	case Save:
		return c.save()
	case CollapseAll:
		c.state.Tree.CollapseAll()
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
}

func (c *Controller) pickFolder() error {
	if c.picker == nil {
		return nil
	}
	path, ok := c.picker.PickFolder()
	if !ok {
		c.logger.Debug("folder selection cancelled")
		return nil
	}
	return c.openFolder(path)
}

func (c *Controller) openFolder(path string) error {
	t, err := tree.Build(c.state.FS, path)
	if err != nil {
		c.logger.Error("failed to load folder", "path", path, "error", err)
		return fmt.Errorf("load folder: %w", err)
	}
	c.state.Tree = t
	c.logger.Info("folder loaded", "path", t.RootPath(), "nodes", t.Len())
	return nil
}

func (c *Controller) selectFile(id tree.NodeID) error {
	node, ok := c.state.Tree.Node(id)
	if !ok {
		return fmt.Errorf("select %d: %w", id, ErrUnknownNode)
	}
	if node.IsDir() {
		c.state.Tree.Toggle(id)
		return nil
	}
	if err := c.state.Session.Open(node.Path); err != nil {
		c.logger.Error("failed to open file", "path", node.Path, "error", err)
		return fmt.Errorf("open file: %w", err)
	}
	c.logger.Info("file opened", "path", node.Path)
	return nil
}

func (c *Controller) save() error {
	session := c.state.Session
	if err := session.Save(); err != nil {
		if errors.Is(err, editor.ErrNoOpenFile) {
			c.logger.Info("save requested with no open file")
			return err
		}
		c.logger.Error("failed to save file", "path", session.Path(), "error", err)
		return fmt.Errorf("save: %w", err)
	}
	c.logger.Info("file saved", "path", session.Path())
	return nil
}
