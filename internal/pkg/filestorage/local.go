package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/courseplanner/planner/internal/pkg/logger"
)

// LocalStorage opens data files from the local filesystem.
type LocalStorage struct {
	basePath string // relative names are resolved against this directory; empty means the working directory
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

// GetFullPath returns the full filesystem path for a given name.
func (ls *LocalStorage) GetFullPath(name string) string {
	if ls.basePath == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(ls.basePath, name)
}

// Open opens the named file for reading.
func (ls *LocalStorage) Open(name string) (io.ReadCloser, error) {
	fullPath := ls.GetFullPath(name)

	info, err := os.Stat(fullPath)
	if err != nil {
		logger.Debug().Err(err).Str("path", fullPath).Msg("Data file not accessible")
		return nil, fmt.Errorf("failed to stat %s: %w", fullPath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", fullPath)
	}

	file, err := os.Open(fullPath)
	if err != nil {
		logger.Debug().Err(err).Str("path", fullPath).Msg("Failed to open data file")
		return nil, fmt.Errorf("failed to open %s: %w", fullPath, err)
	}
	return file, nil
}

// CanOpen opens and immediately releases the named file.
func (ls *LocalStorage) CanOpen(name string) bool {
	f, err := ls.Open(name)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
