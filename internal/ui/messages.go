package ui

import (
	"github.com/lumina/tui/internal/tree"
)

// File tree messages
type NodeActivatedMsg struct{ ID tree.NodeID }
type NodeExpandMsg struct {
	ID     tree.NodeID
	Expand bool
}

// FolderChosenMsg is sent when the folder picker returns a directory.
type FolderChosenMsg struct{ Path string }

// FolderPickerCancelledMsg is sent when the picker is dismissed.
type FolderPickerCancelledMsg struct{}

type ErrorMsg struct {
	Err       error
	Component string
}

// Command messages
type ExecuteCommandMsg struct {
	Command string
}
