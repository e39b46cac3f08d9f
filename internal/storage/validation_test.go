package storage

import (
	"errors"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid path", path: "/mission/db/types.xml", wantErr: false},
		{name: "relative path", path: "types.xml", wantErr: false},
		{name: "empty path", path: "", wantErr: true},
		{name: "whitespace path", path: "   \t", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePath(tt.path, "path")
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrEmptyPath) {
				t.Errorf("validatePath() error = %v, want ErrEmptyPath", err)
			}
		})
	}
}
