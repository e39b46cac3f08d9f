// Package config loads the split configuration and resolves mission paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands $VAR references and a leading ~ in path. When the home
// directory cannot be determined the ~ is left as is.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// OutputDirFor returns the category folder next to source.
func OutputDirFor(source string) string {
	return filepath.Join(filepath.Dir(source), DefaultOutputDirName)
}

// BackupPathFor returns source with its extension replaced by BackupExt.
func BackupPathFor(source string) string {
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(filepath.Dir(source), base+BackupExt)
}

// ManifestPathFor returns the manifest one directory above source.
func ManifestPathFor(source string) string {
	return filepath.Join(filepath.Dir(source), "..", DefaultManifestName)
}
