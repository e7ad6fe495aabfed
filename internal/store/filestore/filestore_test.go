package filestore

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return New(fs), fs
}

func TestReadText(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, "/in/coverage.txt", []byte("\n  85%  \n\n"), 0o644))

	assert.Equal(t, "85%", s.ReadText("/in/coverage.txt"))
}

func TestReadTextFailsSoft(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, fs.MkdirAll("/in/dir", 0o755))

	assert.Empty(t, s.ReadText(""))
	assert.Empty(t, s.ReadText("/in/missing.txt"))
	assert.Empty(t, s.ReadText("/in/dir"))
}

func TestIsFile(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, "/a.md", []byte("x"), 0o644))
	require.NoError(t, fs.MkdirAll("/d", 0o755))

	assert.True(t, s.IsFile("/a.md"))
	assert.False(t, s.IsFile("/d"))
	assert.False(t, s.IsFile("/nope"))
	assert.False(t, s.IsFile(""))
}

func TestOpenDirectory(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, fs.MkdirAll("/d", 0o755))

	_, err := s.Open("/d")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteOverwrites(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, "/out.md", []byte("old content that is longer"), 0o644))

	require.NoError(t, s.Write("/out.md", "new"))

	b, err := afero.ReadFile(fs, "/out.md")
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
}

func TestWriteEmptyPath(t *testing.T) {
	s, _ := newStore(t)
	assert.Error(t, s.Write("", "x"))
}
