// Package token persists the bearer token the API handed out at login.
//
// The token is the only piece of client state that survives restarts. Storage
// failures are deliberately swallowed: a client that cannot read or write its
// token file behaves exactly like a client with no token, it just logs why.
package token

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store holds a single bearer token.
//
// Contract:
//   - Get returns the stored token, or "" if none is stored or storage
//     is unavailable.
//   - Set replaces the stored token.
//   - Clear removes the stored token; clearing an empty store is a no-op.
//
// None of the methods return errors. Failures are logged and otherwise
// treated as "no token".
type Store interface {
	Get() string
	Set(token string)
	Clear()
}

type logger interface {
	Error(ctx context.Context, msg string, args ...any)
}

// FileStore keeps the token in a single file on disk.
type FileStore struct {
	path string
	log  logger
}

// NewFileStore returns a FileStore writing to path. The parent directory is
// created lazily on the first Set.
func NewFileStore(path string, log logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Get() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Error(context.Background(), "failed to read token", "path", s.path, "error", err)
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *FileStore) Set(token string) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.log.Error(context.Background(), "failed to create token dir", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		s.log.Error(context.Background(), "failed to write token", "path", s.path, "error", err)
	}
}

func (s *FileStore) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Error(context.Background(), "failed to clear token", "path", s.path, "error", err)
	}
}
