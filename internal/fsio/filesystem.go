// Package fsio is the filesystem capability the editor core consumes:
// directory listing plus whole-file text read and write.
package fsio

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Entry is one item of a directory listing.
type Entry struct {
	Path  string
	IsDir bool
}

// FileSystem lists directories and moves text between disk and memory.
// All errors returned are *IOError.
type FileSystem interface {
	// ListDirectory returns the entries of path, ordered by name.
	ListDirectory(path string) ([]Entry, error)

	// ReadText returns the full content of the file at path.
	ReadText(path string) (string, error)

	// WriteText replaces the content of the file at path, creating it if needed.
	WriteText(path, content string) error
}

// AferoFileSystem implements FileSystem on top of an afero.Fs.
type AferoFileSystem struct {
	fs afero.Fs
}

// New wraps fs. Use afero.NewOsFs for the host filesystem.
func New(fs afero.Fs) *AferoFileSystem {
	return &AferoFileSystem{fs: fs}
}

// NewOS returns a FileSystem backed by the host operating system.
func NewOS() *AferoFileSystem {
	return New(afero.NewOsFs())
}

// ListDirectory lists path. Symbolic links are reported with their own
// (non-directory) type and are never descended into.
func (a *AferoFileSystem) ListDirectory(path string) ([]Entry, error) {
	infos, err := afero.ReadDir(a.fs, path)
	if err != nil {
		return nil, newIOError("list", path, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, Entry{
			Path:  filepath.Join(path, info.Name()),
			IsDir: info.IsDir(),
		})
	}
	return entries, nil
}

// ReadText reads the file as-is. Content that is not valid UTF-8 is rejected
// with ErrInvalidText rather than being silently altered.
func (a *AferoFileSystem) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", newIOError("read", path, err)
	}
	if !utf8.Valid(data) {
		return "", &IOError{Op: "read", Path: path, Kind: Other, Err: ErrInvalidText}
	}
	return string(data), nil
}

// WriteText truncates and rewrites the file with content, byte for byte.
func (a *AferoFileSystem) WriteText(path, content string) error {
	if err := afero.WriteFile(a.fs, path, []byte(content), 0o644); err != nil {
		return newIOError("write", path, err)
	}
	return nil
}
