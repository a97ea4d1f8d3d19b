package prefs

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// FileStore persists the theme to a small local file. It serves as the
// fallback when the database is unreachable, so writes are atomic to avoid
// serving a torn value later.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Theme(_ context.Context) (Theme, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return Theme(strings.TrimSpace(string(data))), nil
}

func (s *FileStore) SetTheme(_ context.Context, t Theme) error {
	return atomic.WriteFile(s.path, bytes.NewReader([]byte(t)))
}
