package config

import (
	"fmt"
	"path/filepath"

	"github.com/Veraticus/typesplit/internal/classification"
	"github.com/Veraticus/typesplit/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys read from viper.
const (
	KeySource             = "split.source"
	KeyOutputDir          = "split.output_dir"
	KeyManifest           = "split.manifest"
	KeyBackup             = "split.backup"
	KeyFresh              = "split.fresh"
	KeyDryRun             = "split.dry_run"
	KeyDebug              = "debug"
	KeyClothesOverrides   = "rules.clothes_overrides"
	KeyContainerOverrides = "rules.container_overrides"
	KeyFoodOverrides      = "rules.food_overrides"
)

const (
	// DefaultSource is the types database the server ships with.
	DefaultSource = "types.xml"
	// DefaultOutputDirName is the folder generated category files go into.
	DefaultOutputDirName = "types"
	// DefaultManifestName is the economy core manifest file.
	DefaultManifestName = "cfgeconomycore.xml"
	// BackupExt replaces the source extension when archiving it.
	BackupExt = ".bk"
)

// SplitConfig holds everything a split run needs.
type SplitConfig struct {
	SourcePath   string
	BackupPath   string
	OutputDir    string
	ManifestPath string
	Overrides    classification.Overrides
	// Fresh deletes the consumed source instead of archiving it, prunes
	// category files that are no longer populated, and falls back to the
	// backup when the source is gone.
	Fresh  bool
	DryRun bool
	Debug  bool
}

// LoadSplitConfig reads the split configuration from v, fills derived
// defaults, and validates the result.
func LoadSplitConfig(v *viper.Viper) (*SplitConfig, error) {
	cfg := &SplitConfig{
		SourcePath:   ExpandPath(v.GetString(KeySource)),
		BackupPath:   ExpandPath(v.GetString(KeyBackup)),
		OutputDir:    ExpandPath(v.GetString(KeyOutputDir)),
		ManifestPath: ExpandPath(v.GetString(KeyManifest)),
		Fresh:        v.GetBool(KeyFresh),
		DryRun:       v.GetBool(KeyDryRun),
		Debug:        v.GetBool(KeyDebug),
		Overrides: classification.Overrides{
			Clothes:    v.GetStringSlice(KeyClothesOverrides),
			Containers: v.GetStringSlice(KeyContainerOverrides),
			Food:       v.GetStringSlice(KeyFoodOverrides),
		},
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults derives unset paths from the source location: category
// files go next to the source in types/, the backup replaces the source
// extension with .bk, and the manifest lives one directory up.
func (c *SplitConfig) ApplyDefaults() {
	if c.SourcePath == "" {
		c.SourcePath = DefaultSource
	}

	if c.OutputDir == "" {
		c.OutputDir = OutputDirFor(c.SourcePath)
	}
	if c.BackupPath == "" {
		c.BackupPath = BackupPathFor(c.SourcePath)
	}
	if c.ManifestPath == "" {
		c.ManifestPath = ManifestPathFor(c.SourcePath)
	}
}

// Validate checks that the paths do not collide.
func (c *SplitConfig) Validate() error {
	source := filepath.Clean(c.SourcePath)

	switch {
	case c.SourcePath == "":
		return fmt.Errorf("%w: source path is required", common.ErrMissingConfig)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output directory is required", common.ErrMissingConfig)
	case c.ManifestPath == "":
		return fmt.Errorf("%w: manifest path is required", common.ErrMissingConfig)
	case source == filepath.Clean(c.BackupPath):
		return fmt.Errorf("%w: backup path must differ from source path", common.ErrInvalidConfig)
	case source == filepath.Clean(c.ManifestPath):
		return fmt.Errorf("%w: manifest path must differ from source path", common.ErrInvalidConfig)
	case source == filepath.Clean(c.OutputDir):
		return fmt.Errorf("%w: output directory must differ from source path", common.ErrInvalidConfig)
	}

	return nil
}
