// Package session keeps the single value that identifies the current user
// between runs: a token when the server issued one, else the user id.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

type Store interface {
	Get() (string, bool)
	Set(value string) error
	Clear() error
}

type MemoryStore struct {
	mu    sync.Mutex
	value string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.value != ""
}

func (s *MemoryStore) Set(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Set("")
}

type fileContents struct {
	Session string `toml:"session"`
}

// FileStore persists the value as a small TOML file, readable only by the
// owner.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() (string, bool) {
	var fc fileContents
	if _, err := toml.DecodeFile(s.path, &fc); err != nil {
		return "", false
	}
	return fc.Session, fc.Session != ""
}

func (s *FileStore) Set(value string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(fileContents{Session: value}); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
