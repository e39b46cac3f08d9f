package testutil

import (
	"testing"

	"github.com/Veraticus/typesplit/internal/model"
	"github.com/Veraticus/typesplit/internal/xmldoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesBuilder_Build(t *testing.T) {
	doc := NewTypesBuilder().
		WithType("Ammo_9x39").
		WithCategorizedType("AKM", "weapons").
		WithTypeDef(TypeDef{Name: "Candle", Usages: []string{"Town", "SeasonalEvent"}, Nominal: 3}).
		WithTypeDef(TypeDef{Unnamed: true}).
		Build()

	root, err := xmldoc.Parse([]byte(doc))
	require.NoError(t, err)

	elems := model.TypeElements(root)
	require.Len(t, elems, 4)
	assert.Equal(t, "Ammo_9x39", elems[0].Name())
	assert.Equal(t, "weapons", elems[1].CategoryName())
	assert.Equal(t, []string{"Town", "SeasonalEvent"}, elems[2].Usages())
	assert.False(t, elems[3].HasName())
}

func TestSetupMission(t *testing.T) {
	m := SetupMission(t, NewTypesBuilder().WithType("Ammo_9x39").Build())

	assert.True(t, m.Exists(SourcePath))
	assert.Equal(t, Manifest, m.Read(ManifestPath))
	assert.Empty(t, m.CategoryFiles())
}
