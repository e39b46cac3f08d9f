// Package storage provides the file-system layer typesplit reads and writes through.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors.
var (
	ErrEmptyPath = errors.New("path cannot be empty")
)

// validatePath ensures a path parameter is not empty.
func validatePath(path string, paramName string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyPath, paramName)
	}
	return nil
}
