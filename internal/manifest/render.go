package manifest

import (
	"bytes"

	"github.com/Veraticus/typesplit/internal/model"
	"github.com/Veraticus/typesplit/internal/xmldoc"
)

// Declaration is the XML declaration the server ships the manifest with.
const Declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes" ?>`

// Render writes the manifest in its canonical layout: classes, defaults,
// the owned ce section, then any foreign ce sections. The same document
// always renders to the same bytes.
func Render(doc *Document) []byte {
	var buf bytes.Buffer

	buf.WriteString(Declaration + "\n")
	buf.WriteString("<" + RootElement + ">\n\n")

	buf.WriteString("\t<" + ClassesElement + ">\n")
	for _, class := range doc.Classes {
		writeRootClass(&buf, class)
	}
	buf.WriteString("\t</" + ClassesElement + ">\n\n")

	buf.WriteString("\t<" + DefaultsElement + ">\n")
	for _, def := range doc.Defaults {
		name, _ := def.Attr("name")
		value, _ := def.Attr("value")
		buf.WriteString("\t\t<" + def.Name + ` name="` + xmldoc.EscapeAttr(name) + `" value="` + xmldoc.EscapeAttr(value) + `"/>` + "\n")
	}
	buf.WriteString("\t</" + DefaultsElement + ">\n\n")

	writeSection(&buf, model.ManifestFolder, doc.Entries)
	for _, section := range doc.Foreign {
		writeSection(&buf, section.Folder, section.Entries)
	}

	buf.WriteString("</" + RootElement + ">\n")
	return buf.Bytes()
}

// writeRootClass writes a class with its name attribute first and the
// remaining attributes in their original order.
func writeRootClass(buf *bytes.Buffer, class *model.Node) {
	buf.WriteString("\t\t<" + class.Name)
	if name, ok := class.Attr("name"); ok {
		buf.WriteString(` name="` + xmldoc.EscapeAttr(name) + `"`)
	}
	for _, a := range class.Attrs {
		if a.Name == "name" {
			continue
		}
		buf.WriteString(" " + a.Name + `="` + xmldoc.EscapeAttr(a.Value) + `"`)
	}
	buf.WriteString("/>\n")
}

func writeSection(buf *bytes.Buffer, folder string, entries []model.ManifestEntry) {
	if len(entries) == 0 {
		return
	}
	buf.WriteString("\t<" + CEElement + ` folder="` + xmldoc.EscapeAttr(folder) + `">` + "\n")
	for _, e := range entries {
		buf.WriteString("\t\t<" + FileElement + ` name="` + xmldoc.EscapeAttr(e.FileName) + `" type="` + xmldoc.EscapeAttr(e.FileType) + `" />` + "\n")
	}
	buf.WriteString("\t</" + CEElement + ">\n")
}
