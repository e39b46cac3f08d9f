package engine

import (
	"github.com/Veraticus/typesplit/internal/model"
)

// Classifier defines the contract for assigning type elements to categories.
type Classifier interface {
	Classify(root *model.Node) *model.CategorizedSet
	Categories() []model.Category
}

// CategoryWriter defines the contract for writing category files.
type CategoryWriter interface {
	WriteCategoryFiles(set *model.CategorizedSet, outputDir string) ([]string, error)
	PruneStale(outputDir string, categories []model.Category, keep []string) ([]string, error)
}
