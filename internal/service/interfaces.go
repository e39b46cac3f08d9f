// Package service defines the interfaces for all application services.
package service

// FileStore is the file-system collaborator the pipeline reads and writes through.
type FileStore interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	Exists(path string) (bool, error)
	Rename(oldPath, newPath string) error
	Remove(path string) error
	MkdirAll(dir string) error
	// List returns sorted base names of files in dir with the given extension.
	List(dir, ext string) ([]string, error)
}
