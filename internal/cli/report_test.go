package cli

import (
	"bytes"
	"testing"

	"github.com/Veraticus/typesplit/internal/classification"
	"github.com/Veraticus/typesplit/internal/engine"
	"github.com/Veraticus/typesplit/internal/model"
	"github.com/stretchr/testify/assert"
)

func sampleSet() *model.CategorizedSet {
	set := model.NewCategorizedSet(model.KnownCategories())
	set.Add(model.CategoryAmmo, model.TypeElement{Node: model.NewElement("type", model.Attr{Name: "name", Value: "Ammo_9x39"})})
	set.Add(model.CategoryAmmo, model.TypeElement{Node: model.NewElement("type", model.Attr{Name: "name", Value: "Ammo_308Win"})})
	set.Add(model.CategoryUncategorized, model.TypeElement{Node: model.NewElement("type")})
	return set
}

func TestRenderCategoryTable(t *testing.T) {
	out := RenderCategoryTable(sampleSet(), false)
	assert.Contains(t, out, "ammo.xml")
	assert.Contains(t, out, "uncategorized.xml")
	assert.NotContains(t, out, "zombies")
	assert.Contains(t, out, "3 types in 2 categories")

	withEmpty := RenderCategoryTable(sampleSet(), true)
	assert.Contains(t, withEmpty, "zombies")
	assert.Contains(t, withEmpty, "(none)")
}

func TestRenderSummary(t *testing.T) {
	result := &engine.Result{
		Set:        sampleSet(),
		InputPath:  "/db/types.xml",
		ArchivedTo: "/db/types.bk",
		Written:    []string{"ammo.xml", "uncategorized.xml"},
		Registered: []string{"ammo.xml", "uncategorized.xml"},
		Pruned:     []string{"food.xml"},
	}

	out := RenderSummary(result)
	assert.Contains(t, out, "Split Complete")
	assert.Contains(t, out, "Category files written: 2")
	assert.Contains(t, out, "Stale files removed: food.xml")
	assert.Contains(t, out, "/db/types.bk")

	result.DryRun = true
	assert.Contains(t, RenderSummary(result), "Dry run, nothing was written")
}

func TestRenderRules(t *testing.T) {
	out := RenderRules(classification.DefaultRules())
	assert.Contains(t, out, " 1. ammo")
	assert.Contains(t, out, `name starts with "Ammo_"`)
	assert.Contains(t, out, "19. uncategorized")
	assert.Contains(t, out, "always")
}

func TestWriteProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewWriteProgress(&buf)

	p.Advance(model.CategoryAmmo, "ammo.xml")
	assert.Equal(t, 1, p.Done(), "advancing before start is tolerated")

	p.Start(2)
	p.Advance(model.CategoryAmmo, "ammo.xml")
	p.Advance(model.CategoryFood, "food.xml")
	assert.Equal(t, 2, p.Done())
	assert.NotEmpty(t, buf.String())
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatError("failed"), ErrorIcon)
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("typesplit"), "typesplit")
	assert.Contains(t, RenderBox("Title", "body"), "body")
}
