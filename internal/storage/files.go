package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Veraticus/typesplit/internal/common"
	"github.com/spf13/afero"
)

const (
	filePerm = 0o644
	dirPerm  = 0o755
)

// FileStore implements service.FileStore on top of an afero file system.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore wraps an afero file system.
func NewFileStore(fs afero.Fs) *FileStore {
	return &FileStore{fs: fs}
}

// NewOSStore returns a store backed by the real file system.
func NewOSStore() *FileStore {
	return NewFileStore(afero.NewOsFs())
}

// NewMemStore returns a store backed by an in-memory file system.
func NewMemStore() *FileStore {
	return NewFileStore(afero.NewMemMapFs())
}

// ReadFile reads a whole file. A missing file yields common.ErrSourceNotFound.
func (s *FileStore) ReadFile(path string) ([]byte, error) {
	if err := validatePath(path, "path"); err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile creates or truncates path and writes data to it.
func (s *FileStore) WriteFile(path string, data []byte) error {
	if err := validatePath(path, "path"); err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrWriteFailure, path, err)
	}
	return nil
}

// Exists reports whether path exists.
func (s *FileStore) Exists(path string) (bool, error) {
	if err := validatePath(path, "path"); err != nil {
		return false, err
	}
	return afero.Exists(s.fs, path)
}

// Rename moves oldPath to newPath, replacing any existing file at newPath.
func (s *FileStore) Rename(oldPath, newPath string) error {
	if err := validatePath(oldPath, "oldPath"); err != nil {
		return err
	}
	if err := validatePath(newPath, "newPath"); err != nil {
		return err
	}

	if exists, err := afero.Exists(s.fs, newPath); err == nil && exists {
		if err := s.fs.Remove(newPath); err != nil {
			return fmt.Errorf("failed to replace %s: %w", newPath, err)
		}
	}
	if err := s.fs.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}

// Remove deletes path. Removing a missing file is not an error.
func (s *FileStore) Remove(path string) error {
	if err := validatePath(path, "path"); err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// MkdirAll creates dir and any missing parents.
func (s *FileStore) MkdirAll(dir string) error {
	if err := validatePath(dir, "dir"); err != nil {
		return err
	}

	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrWriteFailure, dir, err)
	}
	return nil
}

// List returns the sorted base names of regular files in dir with the given
// extension. An empty extension lists every file. A missing dir is empty.
func (s *FileStore) List(dir, ext string) ([]string, error) {
	if err := validatePath(dir, "dir"); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if ext != "" && !strings.EqualFold(filepath.Ext(info.Name()), ext) {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}
