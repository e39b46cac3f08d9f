// Package writer serializes categorized type elements into one XML file per category.
package writer

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/Veraticus/typesplit/internal/model"
	"github.com/Veraticus/typesplit/internal/service"
	"github.com/Veraticus/typesplit/internal/xmldoc"
)

// RootElement is the root of every generated category file.
const RootElement = "types"

// Indent is the per-level indentation of category files.
const Indent = "  "

// Progress receives updates while category files are written.
type Progress interface {
	// Start is called once with the number of files about to be written.
	Start(total int)
	// Advance is called after each file is written.
	Advance(category model.Category, fileName string)
}

// Writer writes category files through a FileStore.
type Writer struct {
	store    service.FileStore
	logger   *slog.Logger
	progress Progress
}

// Option configures a Writer.
type Option func(*Writer)

// WithProgress reports write progress to p.
func WithProgress(p Progress) Option {
	return func(w *Writer) {
		w.progress = p
	}
}

// WithLogger sets the logger. The default logger is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// New creates a Writer.
func New(store service.FileStore, opts ...Option) *Writer {
	w := &Writer{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RenderCategory renders a category file holding elems in order.
func RenderCategory(elems []model.TypeElement) []byte {
	root := model.NewElement(RootElement)
	for _, elem := range elems {
		root.AppendChild(elem.Node)
	}
	return xmldoc.Printer{Indent: Indent}.Document(root)
}

// WriteCategoryFiles writes outputDir/<category>.xml for every non-empty
// category, overwriting existing files, and returns the written file names
// in category order. Empty categories produce no file. A failed write stops
// the run; files already written stay on disk.
func (w *Writer) WriteCategoryFiles(set *model.CategorizedSet, outputDir string) ([]string, error) {
	var written []string

	categories := set.NonEmpty()
	if w.progress != nil {
		w.progress.Start(len(categories))
	}

	for _, category := range categories {
		elems := set.Elements(category)
		fileName := category.FileName()
		path := filepath.Join(outputDir, fileName)

		if err := w.store.WriteFile(path, RenderCategory(elems)); err != nil {
			return written, fmt.Errorf("failed to write category %s: %w", category, err)
		}

		w.logger.Debug("wrote category file",
			"category", category.String(),
			"file", path,
			"elements", len(elems))

		written = append(written, fileName)
		if w.progress != nil {
			w.progress.Advance(category, fileName)
		}
	}

	return written, nil
}

// PruneStale removes files in outputDir named after one of categories that
// are not listed in keep. It returns the removed file names.
func (w *Writer) PruneStale(outputDir string, categories []model.Category, keep []string) ([]string, error) {
	keepSet := make(map[string]bool, len(keep))
	for _, name := range keep {
		keepSet[name] = true
	}

	var removed []string
	for _, category := range categories {
		fileName := category.FileName()
		if keepSet[fileName] {
			continue
		}

		path := filepath.Join(outputDir, fileName)
		exists, err := w.store.Exists(path)
		if err != nil {
			return removed, fmt.Errorf("failed to check %s: %w", path, err)
		}
		if !exists {
			continue
		}

		if err := w.store.Remove(path); err != nil {
			return removed, err
		}
		w.logger.Debug("removed stale category file", "file", path)
		removed = append(removed, fileName)
	}

	return removed, nil
}
