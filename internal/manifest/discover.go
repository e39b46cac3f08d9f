package manifest

import (
	"fmt"

	"github.com/Veraticus/typesplit/internal/model"
)

// Lister lists files in a directory.
type Lister interface {
	List(dir, ext string) ([]string, error)
}

// Discover returns the category files already present in dir, for
// rebuilding the manifest without splitting again.
func Discover(store Lister, dir string) ([]string, error) {
	names, err := store.List(dir, model.CategoryFileExt)
	if err != nil {
		return nil, fmt.Errorf("failed to discover category files: %w", err)
	}
	return Normalize(names), nil
}
