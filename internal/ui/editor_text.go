package ui

import "strings"

// editorText maps a session buffer to the text shown in the textarea. The
// widget only knows "\n" line breaks, so a buffer whose every line break is
// "\r\n" is shown with "\n" and converted back by toBuffer.
type editorText struct {
	crlf bool
}

// newEditorText picks the line ending of buf and returns the widget text.
func newEditorText(buf string) (editorText, string) {
	lf := strings.Count(buf, "\n")
	if lf > 0 && strings.Count(buf, "\r\n") == lf && strings.Count(buf, "\r") == lf {
		return editorText{crlf: true}, strings.ReplaceAll(buf, "\r\n", "\n")
	}
	return editorText{}, buf
}

// toBuffer converts widget text back to the buffer's line endings.
func (e editorText) toBuffer(value string) string {
	if !e.crlf {
		return value
	}
	return strings.ReplaceAll(value, "\n", "\r\n")
}
