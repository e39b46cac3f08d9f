// Package testutil provides fixtures for tests: a fluent builder for types
// documents and an in-memory mission layout to run the pipeline against.
//
// Example:
//
//	doc := testutil.NewTypesBuilder().
//		WithType("Ammo_9x39").
//		WithCategorizedType("AKM", "weapons").
//		Build()
//
//	m := testutil.SetupMission(t, doc)
package testutil

import (
	"fmt"
	"strings"

	"github.com/Veraticus/typesplit/internal/xmldoc"
)

// TypeDef describes one type element of a generated document.
type TypeDef struct {
	Name     string
	Category string
	Usages   []string
	Nominal  int
	// Unnamed omits the name attribute entirely.
	Unnamed bool
}

// TypesBuilder builds types documents in the layout the server ships.
type TypesBuilder struct {
	defs []TypeDef
}

// NewTypesBuilder creates an empty builder.
func NewTypesBuilder() *TypesBuilder {
	return &TypesBuilder{}
}

// WithType adds a type with only a name.
func (b *TypesBuilder) WithType(name string) *TypesBuilder {
	return b.WithTypeDef(TypeDef{Name: name})
}

// WithCategorizedType adds a type with a category child.
func (b *TypesBuilder) WithCategorizedType(name, category string) *TypesBuilder {
	return b.WithTypeDef(TypeDef{Name: name, Category: category})
}

// WithTypeDef adds a fully described type.
func (b *TypesBuilder) WithTypeDef(def TypeDef) *TypesBuilder {
	b.defs = append(b.defs, def)
	return b
}

// Len returns the number of types added so far.
func (b *TypesBuilder) Len() int {
	return len(b.defs)
}

// Build renders the document.
func (b *TypesBuilder) Build() string {
	var sb strings.Builder
	sb.WriteString(xmldoc.Declaration + "\n<types>\n")
	for _, def := range b.defs {
		if def.Unnamed {
			sb.WriteString("    <type>\n")
		} else {
			fmt.Fprintf(&sb, "    <type name=\"%s\">\n", xmldoc.EscapeAttr(def.Name))
		}
		fmt.Fprintf(&sb, "        <nominal>%d</nominal>\n", def.Nominal)
		sb.WriteString("        <flags count_in_cargo=\"0\" count_in_hoarder=\"0\" count_in_map=\"1\" count_in_player=\"0\" crafted=\"0\" deloot=\"0\"/>\n")
		if def.Category != "" {
			fmt.Fprintf(&sb, "        <category name=\"%s\"/>\n", xmldoc.EscapeAttr(def.Category))
		}
		for _, usage := range def.Usages {
			fmt.Fprintf(&sb, "        <usage name=\"%s\"/>\n", xmldoc.EscapeAttr(usage))
		}
		sb.WriteString("    </type>\n")
	}
	sb.WriteString("</types>\n")
	return sb.String()
}
