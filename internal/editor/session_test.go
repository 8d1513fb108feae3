package editor

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lumina/tui/internal/fsio"
)

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work", 0o755))
	for p, c := range files {
		require.NoError(t, afero.WriteFile(mem, p, []byte(c), 0o644))
	}
	return mem
}

func readFile(t *testing.T, mem afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(mem, path)
	require.NoError(t, err)
	return string(data)
}

func TestNewSessionIsEmpty(t *testing.T) {
	s := NewSession(fsio.New(afero.NewMemMapFs()))
	assert.Equal(t, Empty, s.State())
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.Path())
	assert.Empty(t, s.Buffer())
	assert.False(t, s.Modified())
}

func TestOpenThenSaveRoundTrip(t *testing.T) {
	original := "line one\r\n\ttabbed ünïcode\n\nno trailing newline"
	mem := memFS(t, map[string]string{"/work/a.txt": original})
	s := NewSession(fsio.New(mem))

	require.NoError(t, s.Open("/work/a.txt"))
	assert.Equal(t, Open, s.State())
	assert.Equal(t, original, s.Buffer())

	require.NoError(t, s.Save())
	assert.Equal(t, original, readFile(t, mem, "/work/a.txt"))
}

func TestLastEditWins(t *testing.T) {
	mem := memFS(t, map[string]string{"/work/a.txt": "start"})
	s := NewSession(fsio.New(mem))
	require.NoError(t, s.Open("/work/a.txt"))

	s.Edit("x")
	s.Edit("y")
	assert.True(t, s.Modified())
	require.NoError(t, s.Save())

	assert.Equal(t, "y", readFile(t, mem, "/work/a.txt"))
	assert.False(t, s.Modified())
}

func TestSaveWithoutOpenFile(t *testing.T) {
	fsys := fsio.NewMockFileSystem()
	s := NewSession(fsys)

	err := s.Save()
	require.ErrorIs(t, err, ErrNoOpenFile)
	fsys.AssertNotCalled(t, "WriteText", mock.Anything, mock.Anything)
}

func TestEditWithoutOpenFileIsIgnored(t *testing.T) {
	s := NewSession(fsio.NewMockFileSystem())
	s.Edit("orphan")
	assert.Empty(t, s.Buffer())
	assert.Equal(t, Empty, s.State())
}

// Opening another file drops unsaved edits without writing them: there is
// no dirty check.
func TestOpenDiscardsUnsavedEdits(t *testing.T) {
	mem := memFS(t, map[string]string{
		"/work/a.txt": "A on disk",
		"/work/b.txt": "B on disk",
	})
	s := NewSession(fsio.New(mem))

	require.NoError(t, s.Open("/work/a.txt"))
	s.Edit("A edited")
	require.NoError(t, s.Open("/work/b.txt"))

	assert.Equal(t, "/work/b.txt", s.Path())
	assert.Equal(t, "B on disk", s.Buffer())
	assert.Equal(t, "A on disk", readFile(t, mem, "/work/a.txt"))
}

func TestOpenMissingKeepsPreviousFile(t *testing.T) {
	mem := memFS(t, map[string]string{"/work/a.txt": "A"})
	s := NewSession(fsio.New(mem))
	require.NoError(t, s.Open("/work/a.txt"))
	s.Edit("A edited")

	err := s.Open("/work/missing.txt")
	require.Error(t, err)
	kind, ok := fsio.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, fsio.NotFound, kind)

	assert.Equal(t, "/work/a.txt", s.Path())
	assert.Equal(t, "A edited", s.Buffer())
}

func TestOpenMissingFromEmpty(t *testing.T) {
	s := NewSession(fsio.New(afero.NewMemMapFs()))
	require.Error(t, s.Open("/nope"))
	assert.Equal(t, Empty, s.State())
}

func TestSaveFailureIsRetryable(t *testing.T) {
	mem := memFS(t, map[string]string{"/work/a.txt": "A"})

	readOnly := NewSession(fsio.New(afero.NewReadOnlyFs(mem)))
	require.NoError(t, readOnly.Open("/work/a.txt"))
	readOnly.Edit("changed")

	err := readOnly.Save()
	require.Error(t, err)
	kind, _ := fsio.KindOf(err)
	assert.Equal(t, fsio.PermissionDenied, kind)
	assert.Equal(t, "/work/a.txt", readOnly.Path())
	assert.Equal(t, "changed", readOnly.Buffer())
	assert.True(t, readOnly.Modified())
	assert.Equal(t, "A", readFile(t, mem, "/work/a.txt"))
}

func TestSaveRetryAfterTransientFailure(t *testing.T) {
	fsys := fsio.NewMockFileSystem()
	fsys.On("ReadText", "/work/a.txt").Return("A", nil)
	transient := &fsio.IOError{Op: "write", Path: "/work/a.txt", Kind: fsio.Other, Err: assert.AnError}
	fsys.On("WriteText", "/work/a.txt", "B").Return(transient).Once()
	fsys.On("WriteText", "/work/a.txt", "B").Return(nil).Once()

	s := NewSession(fsys)
	require.NoError(t, s.Open("/work/a.txt"))
	s.Edit("B")

	require.ErrorIs(t, s.Save(), transient)
	require.NoError(t, s.Save())
	assert.False(t, s.Modified())
	fsys.AssertExpectations(t)
}
