package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage keeps the token in a single file under the user config dir,
// the CLI's stand-in for the browser's localStorage slot.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) (*FileStorage, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "socialuni", "token")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	return &FileStorage{path: path}, nil
}

func (s *FileStorage) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (s *FileStorage) Put(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStorage) Delete() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage holds the token in memory only. Used by tests and by
// commands that must not touch the on-disk session.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

func (s *MemoryStorage) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStorage) Put(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStorage) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
