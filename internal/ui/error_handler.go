package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/lumina/tui/internal/editor"
	"github.com/lumina/tui/internal/fsio"
)

// ErrorHandler turns errors into status lines and keeps a repeated failure
// (e.g. hammering ctrl+s on a read-only file) from flooding the log pane.
type ErrorHandler struct {
	lastError     string
	lastErrorTime time.Time
	errorCount    int
	window        time.Duration
	now           func() time.Time
}

// NewErrorHandler creates a handler that collapses identical errors seen
// within two seconds of each other.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		window: 2 * time.Second,
		now:    time.Now,
	}
}

// HandleError formats err for display. repeat is true when the same error
// was just reported and the caller should only refresh the status line.
func (e *ErrorHandler) HandleError(err error, component string) (message string, repeat bool) {
	if err == nil {
		return "", false
	}

	now := e.now()
	message = formatErrorMessage(err, component)
	if message == e.lastError && now.Sub(e.lastErrorTime) < e.window {
		e.errorCount++
		e.lastErrorTime = now
		return fmt.Sprintf("%s (x%d)", message, e.errorCount), true
	}

	e.lastError = message
	e.lastErrorTime = now
	e.errorCount = 1
	return message, false
}

// Reset forgets the last error, e.g. after a successful operation.
func (e *ErrorHandler) Reset() {
	e.lastError = ""
	e.lastErrorTime = time.Time{}
	e.errorCount = 0
}

// formatErrorMessage creates a user-facing message from a core error.
func formatErrorMessage(err error, component string) string {
	if errors.Is(err, editor.ErrNoOpenFile) {
		return fmt.Sprintf("%s: no file is open, select one in the tree first", component)
	}

	var ioErr *fsio.IOError
	if errors.As(err, &ioErr) {
		switch {
		case ioErr.Kind == fsio.NotFound:
			return fmt.Sprintf("%s: %s no longer exists", component, ioErr.Path)
		case ioErr.Kind == fsio.PermissionDenied:
			return fmt.Sprintf("%s: permission denied for %s", component, ioErr.Path)
		case errors.Is(ioErr, fsio.ErrInvalidText):
			return fmt.Sprintf("%s: %s is not a UTF-8 text file", component, ioErr.Path)
		}
		return fmt.Sprintf("%s: %s: %v", component, ioErr.Path, ioErr.Err)
	}

	return fmt.Sprintf("%s: %v", component, err)
}
