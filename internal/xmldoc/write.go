package xmldoc

import (
	"bytes"
	"strings"

	"github.com/Veraticus/typesplit/internal/model"
)

// Declaration is the XML declaration written at the top of generated documents.
const Declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#xA;",
		"\r", "&#xD;",
		"\t", "&#x9;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// EscapeAttr escapes s for use inside a double-quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// EscapeText escapes s for use as element character data.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// Printer writes nodes with one element per line.
type Printer struct {
	Indent string
}

// Document renders a full document: declaration, then root with its
// children, each nested level indented by p.Indent. Output ends with a newline.
func (p Printer) Document(root *model.Node) []byte {
	var buf bytes.Buffer
	buf.WriteString(Declaration)
	buf.WriteByte('\n')
	p.Element(&buf, root, 0)
	return buf.Bytes()
}

// Element writes n at the given depth followed by a newline.
func (p Printer) Element(buf *bytes.Buffer, n *model.Node, depth int) {
	pad := strings.Repeat(p.Indent, depth)

	switch n.Kind {
	case model.TextNode:
		if text := strings.TrimSpace(n.Text); text != "" {
			buf.WriteString(pad + EscapeText(text) + "\n")
		}
		return
	case model.CommentNode:
		buf.WriteString(pad + "<!--" + n.Text + "-->\n")
		return
	}

	buf.WriteString(pad)
	writeStartTag(buf, n)

	children := significant(n.Children)
	switch {
	case len(children) == 0:
		buf.WriteString("/>\n")
	case len(children) == 1 && children[0].Kind == model.TextNode:
		buf.WriteString(">" + EscapeText(strings.TrimSpace(children[0].Text)) + "</" + n.Name + ">\n")
	default:
		buf.WriteString(">\n")
		for _, c := range children {
			p.Element(buf, c, depth+1)
		}
		buf.WriteString(pad + "</" + n.Name + ">\n")
	}
}

func writeStartTag(buf *bytes.Buffer, n *model.Node) {
	buf.WriteString("<" + n.Name)
	for _, a := range n.Attrs {
		buf.WriteString(" " + a.Name + `="` + EscapeAttr(a.Value) + `"`)
	}
}

// significant drops whitespace-only text so layout is fully owned by the printer.
func significant(children []*model.Node) []*model.Node {
	out := make([]*model.Node, 0, len(children))
	for _, c := range children {
		if c.IsBlank() {
			continue
		}
		out = append(out, c)
	}
	return out
}
