// Package editor holds the single open-file session: the path of the file
// being edited and its in-memory text buffer.
package editor

import (
	"errors"

	"github.com/lumina/tui/internal/fsio"
)

// ErrNoOpenFile is returned by Save when no file has been opened yet.
var ErrNoOpenFile = errors.New("no file is open")

// State is the session's lifecycle state.
type State int

const (
	// Empty means no file has been opened. There is no way back to Empty
	// once a file is open.
	Empty State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "empty"
}

// Session binds one file path to an editable buffer.
//
// Opening another file replaces the buffer without checking for unsaved
// edits; those edits are lost.
type Session struct {
	fs fsio.FileSystem

	path   string
	buffer string
	saved  string
	open   bool
}

// NewSession returns an Empty session reading and writing through fs.
func NewSession(fs fsio.FileSystem) *Session {
	return &Session{fs: fs}
}

// State reports whether a file is open.
func (s *Session) State() State {
	if s.open {
		return Open
	}
	return Empty
}

// IsOpen is shorthand for State() == Open.
func (s *Session) IsOpen() bool {
	return s.open
}

// Path returns the open file's path, or "" when Empty.
func (s *Session) Path() string {
	return s.path
}

// Buffer returns the current text, or "" when Empty.
func (s *Session) Buffer() string {
	return s.buffer
}

// Modified reports whether the buffer differs from what was last read from
// or written to disk.
func (s *Session) Modified() bool {
	return s.open && s.buffer != s.saved
}

// Open loads path into the buffer. On failure the session is unchanged.
func (s *Session) Open(path string) error {
	content, err := s.fs.ReadText(path)
	if err != nil {
		return err
	}
	s.path = path
	s.buffer = content
	s.saved = content
	s.open = true
	return nil
}

// Edit replaces the buffer. It is ignored while no file is open.
func (s *Session) Edit(content string) {
	if !s.open {
		return
	}
	s.buffer = content
}

// Save writes the buffer over the open file. On failure path and buffer are
// kept so the save can be retried.
func (s *Session) Save() error {
	if !s.open {
		return ErrNoOpenFile
	}
	if err := s.fs.WriteText(s.path, s.buffer); err != nil {
		return err
	}
	s.saved = s.buffer
	return nil
}
