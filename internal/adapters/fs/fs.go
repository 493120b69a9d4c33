// Package fs implements the read-only file system adapter backing the
// planner and the toolchain deriver.
package fs

import (
	"os"

	"go.trai.ch/plank/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem over the operating system.
type FileSystem struct{}

// New creates a new FileSystem adapter.
func New() *FileSystem {
	return &FileSystem{}
}

// Exists reports whether the path exists.
func (f *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDirectory reports whether the path exists and is a readable directory.
func (f *FileSystem) IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadDir lists the entry names of a directory.
func (f *FileSystem) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
