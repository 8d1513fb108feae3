package controller

import "github.com/lumina/tui/internal/tree"

// Event is an input forwarded by the view.
type Event interface {
	isEvent()
}

// PickFolder asks the FolderPicker for a directory and opens it.
type PickFolder struct{}

// OpenFolder opens a directory already chosen by the user.
type OpenFolder struct {
	Path string
}

// ToggleDirectory expands or collapses a directory row.
type ToggleDirectory struct {
	Node tree.NodeID
}

// SelectFile opens a file row in the editor. Selecting a directory row
// toggles it instead.
type SelectFile struct {
	Node tree.NodeID
}

// Edit carries the editor widget's full text after a keystroke.
type Edit struct {
	Content string
}

// Save writes the buffer to the open file.
type Save struct{}

// CollapseAll folds every directory of the tree.
type CollapseAll struct{}

func (PickFolder) isEvent()      {}
func (OpenFolder) isEvent()      {}
func (ToggleDirectory) isEvent() {}
func (SelectFile) isEvent()      {}
func (Edit) isEvent()            {}
func (Save) isEvent()            {}
func (CollapseAll) isEvent()     {}
