package testutil

import (
	"io/fs"
	"os"
	"time"
)

// MockDirEntry implements os.DirEntry for testing.
type MockDirEntry struct {
	EntryName string
	Dir       bool
}

func (m *MockDirEntry) Name() string { return m.EntryName }
func (m *MockDirEntry) IsDir() bool  { return m.Dir }

func (m *MockDirEntry) Type() fs.FileMode {
	if m.Dir {
		return fs.ModeDir
	}
	return 0
}

func (m *MockDirEntry) Info() (os.FileInfo, error) {
	return &mockFileInfo{entry: m}, nil
}

type mockFileInfo struct {
	entry *MockDirEntry
}

func (m *mockFileInfo) Name() string       { return m.entry.EntryName }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.entry.Type() | 0o644 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.entry.Dir }
func (m *mockFileInfo) Sys() any           { return nil }

// Entries builds file entries for the given names, in the given order.
func Entries(names ...string) []os.DirEntry {
	entries := make([]os.DirEntry, len(names))
	for i, name := range names {
		entries[i] = &MockDirEntry{EntryName: name}
	}
	return entries
}

// NewMockDirDirEntry creates a MockDirEntry for a directory.
func NewMockDirDirEntry(name string) *MockDirEntry {
	return &MockDirEntry{EntryName: name, Dir: true}
}
