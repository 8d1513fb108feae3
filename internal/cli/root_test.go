package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetIn(&bytes.Buffer{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "lumina version dev")
}

func TestRefusesNonTerminal(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "--log-file", filepath.Join(dir, "lumina.log"))
	assert.ErrorIs(t, err, ErrNotInteractive)
	assert.NoFileExists(t, filepath.Join(dir, "lumina.log"))
}

func TestRejectsUnknownTheme(t *testing.T) {
	_, err := execute(t, "--theme", "neon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "neon"`)
}

func TestRejectsInvalidConfig(t *testing.T) {
	_, err := execute(t, "--tree-width", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tree_width")
}

func TestRejectsMissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestRejectsExtraArgs(t *testing.T) {
	_, err := execute(t, "a", "b")
	require.Error(t, err)
}

func TestStartupFolder(t *testing.T) {
	path, ok := startupFolder("").PickFolder()
	assert.False(t, ok)
	assert.Empty(t, path)

	dir := t.TempDir()
	path, ok = startupFolder(dir).PickFolder()
	assert.True(t, ok)
	assert.Equal(t, dir, path)

	path, ok = startupFolder("relative").PickFolder()
	assert.True(t, ok)
	assert.True(t, filepath.IsAbs(path))
}

func TestIsInteractiveWithBuffers(t *testing.T) {
	assert.False(t, isInteractive(&bytes.Buffer{}, &bytes.Buffer{}))
}
