// Package engine runs the split pipeline: read the types document, classify
// its elements, write one file per category, and register them in the manifest.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/typesplit/internal/common"
	"github.com/Veraticus/typesplit/internal/manifest"
	"github.com/Veraticus/typesplit/internal/model"
	"github.com/Veraticus/typesplit/internal/service"
	"github.com/Veraticus/typesplit/internal/xmldoc"
)

// Config holds the paths and switches for a run.
type Config struct {
	SourcePath   string
	BackupPath   string
	OutputDir    string
	ManifestPath string
	Fresh        bool
	DryRun       bool
}

// Result describes what a run did.
type Result struct {
	Set           *model.CategorizedSet
	InputPath     string
	ArchivedTo    string
	Written       []string
	Pruned        []string
	Registered    []string
	SourceDeleted bool
	DryRun        bool
}

// SplitEngine orchestrates a split run.
type SplitEngine struct {
	store      service.FileStore
	classifier Classifier
	writer     CategoryWriter
}

// New creates a split engine with the given dependencies.
func New(store service.FileStore, classifier Classifier, w CategoryWriter) *SplitEngine {
	return &SplitEngine{
		store:      store,
		classifier: classifier,
		writer:     w,
	}
}

// Run executes one split. Steps run in order and the first error aborts the
// run; category files written before a failure are left in place. The
// source is archived (or deleted in fresh mode) only after the manifest has
// been written.
func (e *SplitEngine) Run(ctx context.Context, cfg Config) (*Result, error) {
	inputPath, err := e.resolveInput(cfg)
	if err != nil {
		return nil, err
	}

	set, err := e.Classify(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	result := &Result{Set: set, InputPath: inputPath, DryRun: cfg.DryRun}
	if cfg.DryRun {
		slog.InfoContext(ctx, "Dry run, no files written", "elements", set.Len())
		return result, nil
	}

	// Nothing has been written yet, so an interrupt here leaves no trace.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := e.store.MkdirAll(cfg.OutputDir); err != nil {
		return nil, err
	}

	written, err := e.writer.WriteCategoryFiles(set, cfg.OutputDir)
	result.Written = written
	if err != nil {
		return result, err
	}
	slog.InfoContext(ctx, "Wrote category files", "count", len(written), "dir", cfg.OutputDir)

	if cfg.Fresh {
		pruned, pruneErr := e.writer.PruneStale(cfg.OutputDir, e.classifier.Categories(), written)
		result.Pruned = pruned
		if pruneErr != nil {
			return result, pruneErr
		}
		if len(pruned) > 0 {
			slog.InfoContext(ctx, "Removed stale category files", "files", pruned)
		}
	}

	registered, err := e.UpdateManifest(ctx, cfg.ManifestPath, written)
	result.Registered = registered
	if err != nil {
		return result, err
	}

	if err := e.archive(ctx, cfg, inputPath, result); err != nil {
		return result, err
	}

	return result, nil
}

// Classify reads and classifies the types document at path without writing anything.
func (e *SplitEngine) Classify(ctx context.Context, path string) (*model.CategorizedSet, error) {
	data, err := e.store.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := xmldoc.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	set := e.classifier.Classify(root)
	slog.InfoContext(ctx, "Classified types", "source", path, "elements", set.Len(), "categories", len(set.NonEmpty()))

	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		counts := set.Counts()
		for _, category := range set.NonEmpty() {
			common.LogDebug("Category populated", common.Fields{
				"category": category.String(),
				"elements": counts[category],
			})
		}
	}

	return set, nil
}

// UpdateManifest rewrites the manifest at path so its owned section lists
// exactly fileNames, and returns the registered names in manifest order.
func (e *SplitEngine) UpdateManifest(ctx context.Context, path string, fileNames []string) ([]string, error) {
	data, err := e.store.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	doc, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	updated := manifest.Update(doc, fileNames)
	if err := e.store.WriteFile(path, manifest.Render(updated)); err != nil {
		return nil, err
	}

	registered := updated.FileNames()
	slog.InfoContext(ctx, "Updated manifest", "manifest", path, "entries", len(registered))
	return registered, nil
}

// RebuildManifest registers the category files already present in outputDir.
func (e *SplitEngine) RebuildManifest(ctx context.Context, outputDir, manifestPath string) ([]string, error) {
	files, err := manifest.Discover(e.store, outputDir)
	if err != nil {
		return nil, err
	}
	return e.UpdateManifest(ctx, manifestPath, files)
}

// resolveInput picks the document to read. In fresh mode a missing source
// falls back to the backup left by an earlier run.
func (e *SplitEngine) resolveInput(cfg Config) (string, error) {
	exists, err := e.store.Exists(cfg.SourcePath)
	if err != nil {
		return "", fmt.Errorf("failed to check source: %w", err)
	}
	if exists {
		return cfg.SourcePath, nil
	}

	if cfg.Fresh && cfg.BackupPath != "" {
		backupExists, err := e.store.Exists(cfg.BackupPath)
		if err != nil {
			return "", fmt.Errorf("failed to check backup: %w", err)
		}
		if backupExists {
			slog.Info("Source missing, using backup", "backup", cfg.BackupPath)
			return cfg.BackupPath, nil
		}
	}

	err = fmt.Errorf("%w: %s", common.ErrSourceNotFound, cfg.SourcePath)
	if cfg.Fresh {
		return "", common.NewUserError("Neither the types document nor its backup exists", err)
	}
	return "", err
}

// archive moves the consumed source aside. In fresh mode the source is
// deleted when a backup already exists; the backup itself is never removed.
func (e *SplitEngine) archive(ctx context.Context, cfg Config, inputPath string, result *Result) error {
	if inputPath != cfg.SourcePath {
		return nil
	}

	if cfg.Fresh && cfg.BackupPath != "" {
		backupExists, err := e.store.Exists(cfg.BackupPath)
		if err != nil {
			return fmt.Errorf("failed to check backup: %w", err)
		}
		if backupExists {
			if err := e.store.Remove(inputPath); err != nil {
				return err
			}
			result.SourceDeleted = true
			slog.InfoContext(ctx, "Removed source document", "source", inputPath, "backup", cfg.BackupPath)
			return nil
		}
	}

	if cfg.BackupPath == "" {
		return errors.New("no backup path configured")
	}
	if err := e.store.Rename(inputPath, cfg.BackupPath); err != nil {
		return err
	}
	result.ArchivedTo = cfg.BackupPath
	slog.InfoContext(ctx, "Archived source document", "source", inputPath, "backup", cfg.BackupPath)
	return nil
}
