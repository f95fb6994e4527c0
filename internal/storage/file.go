package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as one file under a data directory
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// backed by it
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Get reads the value for key
func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNoValue
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes the value for key
func (s *FileStore) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0644)
}

// Delete removes the key's backing file
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
