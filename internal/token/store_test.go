package token

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobport/adminctl/internal/logging"
)

func newStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "state", "token"), logging.Discard())
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := newStore(t)

	assert.Equal(t, "", s.Get())

	s.Set("abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", s.Get())

	s.Set("replaced")
	assert.Equal(t, "replaced", s.Get())

	s.Clear()
	assert.Equal(t, "", s.Get())
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	s := newStore(t)

	s.Clear()
	s.Clear()
	assert.Equal(t, "", s.Get())
}

func TestFileStore_TrimsWhitespace(t *testing.T) {
	s := newStore(t)

	s.Set("  token-with-space \n")
	assert.Equal(t, "token-with-space", s.Get())
}

func TestFileStore_StorageFailureYieldsEmptyToken(t *testing.T) {
	// Point the store at a directory: reads and writes fail, Get still
	// returns "" without panicking.
	dir := t.TempDir()
	s := NewFileStore(dir, logging.Discard())

	require.NotPanics(t, func() {
		s.Set("ignored")
		s.Clear()
	})
	assert.Equal(t, "", s.Get())
}
