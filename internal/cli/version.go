package cli

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/lumina/tui/internal/cli.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionString() string {
	return fmt.Sprintf("%s (%s, %s) %s/%s", version, commit, date, runtime.GOOS, runtime.GOARCH)
}
