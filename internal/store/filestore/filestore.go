package filestore

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// Plain-text storage for the summary inputs and output.
// Inputs are optional: anything that is not a readable regular file
// counts as empty.

const outputPerm = 0o644

// Store reads input files and writes the summary document.
type Store struct {
	fs afero.Fs
}

// New wraps fs. Pass afero.NewOsFs() for the real filesystem.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// IsFile reports whether path names an existing regular file.
func (s *Store) IsFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := s.fs.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// Open opens path for reading. It fails for empty paths, directories and
// missing files alike.
func (s *Store) Open(path string) (io.ReadCloser, error) {
	if !s.IsFile(path) {
		return nil, fmt.Errorf("open %q: %w", path, os.ErrNotExist)
	}
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return f, nil
}

// ReadText returns the trimmed content of path, or "" when the path is
// empty, missing, not a regular file or unreadable.
func (s *Store) ReadText(path string) string {
	if !s.IsFile(path) {
		return ""
	}
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// Write replaces the content of path with content.
func (s *Store) Write(path, content string) error {
	if path == "" {
		return fmt.Errorf("write file: empty path")
	}
	if err := afero.WriteFile(s.fs, path, []byte(content), outputPerm); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
