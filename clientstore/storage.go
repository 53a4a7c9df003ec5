package clientstore

import (
	"errors"
	"os"
	"path/filepath"
)

// Storage is the persistence boundary of the store: JSON blobs addressed by
// key, in the manner of browser local storage.
type Storage interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Remove(key string) error
}

// FileStorage keeps one JSON file per key inside a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (fs *FileStorage) path(key string) string {
	return filepath.Join(fs.dir, key+".json")
}

func (fs *FileStorage) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(fs.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (fs *FileStorage) Save(key string, data []byte) error {
	return os.WriteFile(fs.path(key), data, 0o644)
}

func (fs *FileStorage) Remove(key string) error {
	err := os.Remove(fs.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
