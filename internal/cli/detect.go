package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isInteractive reports whether in and out are both terminals. The UI takes
// over the screen, so piped or redirected streams are refused.
func isInteractive(in io.Reader, out io.Writer) bool {
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
