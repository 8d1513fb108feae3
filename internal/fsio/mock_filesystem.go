package fsio

import (
	"github.com/stretchr/testify/mock"
)

// MockFileSystem is a testify mock of FileSystem for tests that need to
// script failures or assert which calls were made.
type MockFileSystem struct {
	mock.Mock
}

// NewMockFileSystem returns an empty mock; set expectations with On.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{}
}

func (m *MockFileSystem) ListDirectory(path string) ([]Entry, error) {
	args := m.Called(path)
	entries, _ := args.Get(0).([]Entry)
	return entries, args.Error(1)
}

func (m *MockFileSystem) ReadText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystem) WriteText(path, content string) error {
	args := m.Called(path, content)
	return args.Error(0)
}
