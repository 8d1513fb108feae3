package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	New(&buf, true).Debug("shown", "path", "/work/a.txt")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "path=/work/a.txt")
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lumina.log")

	logger, closer, err := Open(path, false)
	require.NoError(t, err)
	logger.Info("folder loaded", "path", "/work")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "folder loaded")
}
