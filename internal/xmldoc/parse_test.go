package xmldoc

import (
	"testing"

	"github.com/Veraticus/typesplit/internal/common"
	"github.com/Veraticus/typesplit/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesStructure(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>
<!-- header comment dropped -->
<types>
    <type name="Ammo_9x39"><nominal>10</nominal><!-- keep me --><flags count_in_cargo="0" deloot="1"/></type>
</types>`

	root, err := Parse([]byte(input))
	require.NoError(t, err)

	want := &model.Node{
		Kind: model.ElementNode,
		Name: "types",
		Children: []*model.Node{
			{Kind: model.TextNode, Text: "\n    "},
			{
				Kind:  model.ElementNode,
				Name:  "type",
				Attrs: []model.Attr{{Name: "name", Value: "Ammo_9x39"}},
				Children: []*model.Node{
					{
						Kind:     model.ElementNode,
						Name:     "nominal",
						Children: []*model.Node{{Kind: model.TextNode, Text: "10"}},
					},
					{Kind: model.CommentNode, Text: " keep me "},
					{
						Kind: model.ElementNode,
						Name: "flags",
						Attrs: []model.Attr{
							{Name: "count_in_cargo", Value: "0"},
							{Name: "deloot", Value: "1"},
						},
					},
				},
			},
			{Kind: model.TextNode, Text: "\n"},
		},
	}

	if diff := cmp.Diff(want, root); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MergesEntityText(t *testing.T) {
	root, err := Parse([]byte(`<a>x &amp; y</a>`))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "x & y", root.Children[0].Text)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "  \n"},
		{name: "unclosed", input: "<types><type name=\"a\">"},
		{name: "mismatched", input: "<types></type>"},
		{name: "garbage", input: "not xml at all <"},
		{name: "two roots", input: "<a/><b/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, common.ErrParse)
		})
	}
}
