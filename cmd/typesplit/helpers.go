package main

import (
	"log/slog"

	"github.com/Veraticus/typesplit/internal/classification"
	"github.com/Veraticus/typesplit/internal/config"
	"github.com/Veraticus/typesplit/internal/engine"
	"github.com/Veraticus/typesplit/internal/storage"
	"github.com/Veraticus/typesplit/internal/writer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// pathFlags maps the shared path flags to their config keys.
var pathFlags = map[string]string{
	"source":   config.KeySource,
	"output":   config.KeyOutputDir,
	"manifest": config.KeyManifest,
	"backup":   config.KeyBackup,
}

// addPathFlags registers the path flags every command understands.
func addPathFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("source", "s", "", "types document to split (default: types.xml)")
	cmd.Flags().StringP("output", "o", "", "directory for category files (default: <source dir>/types)")
	cmd.Flags().StringP("manifest", "m", "", "economy manifest to update (default: <source dir>/../cfgeconomycore.xml)")
	cmd.Flags().String("backup", "", "where the source is archived (default: <source dir>/types.bk)")
}

// bindFlags binds the flags of the running command to viper. Binding at
// run time keeps commands that share flag names from overwriting each other.
func bindFlags(cmd *cobra.Command, extra map[string]string) {
	bind := func(name, key string) {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
	for name, key := range pathFlags {
		bind(name, key)
	}
	for name, key := range extra {
		bind(name, key)
	}
}

// loadConfig binds cmd's flags and reads the split configuration.
func loadConfig(cmd *cobra.Command, extra map[string]string) (*config.SplitConfig, error) {
	bindFlags(cmd, extra)
	return config.LoadSplitConfig(viper.GetViper())
}

// buildEngine wires the classifier, writer, and store for cfg. A nil
// progress disables progress reporting.
func buildEngine(cfg *config.SplitConfig, progress writer.Progress) (*engine.SplitEngine, *classification.Classifier, error) {
	classifier, err := classification.NewClassifier(classification.RulesWithOverrides(cfg.Overrides))
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewOSStore()
	opts := []writer.Option{writer.WithLogger(slog.Default().With("component", "writer"))}
	if progress != nil {
		opts = append(opts, writer.WithProgress(progress))
	}

	return engine.New(store, classifier, writer.New(store, opts...)), classifier, nil
}

func engineConfig(cfg *config.SplitConfig) engine.Config {
	return engine.Config{
		SourcePath:   cfg.SourcePath,
		BackupPath:   cfg.BackupPath,
		OutputDir:    cfg.OutputDir,
		ManifestPath: cfg.ManifestPath,
		Fresh:        cfg.Fresh,
		DryRun:       cfg.DryRun,
	}
}
