// Package xmldoc reads XML documents into generic node trees and writes them
// back out with stable, indented formatting.
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/typesplit/internal/common"
	"github.com/Veraticus/typesplit/internal/model"
)

// Parse reads a complete XML document and returns its root element.
// Processing instructions and directives are dropped; comments and
// character data inside the root are kept.
func Parse(data []byte) (*model.Node, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader is Parse for an io.Reader.
func ParseReader(r io.Reader) (*model.Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	var (
		root  *model.Node
		stack []*model.Node
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				return nil, fmt.Errorf("%w: multiple root elements", common.ErrParse)
			}
			node := model.NewElement(t.Name.Local, convertAttrs(t.Attr)...)
			if len(stack) == 0 {
				root = node
			} else {
				stack[len(stack)-1].AppendChild(node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			appendText(stack[len(stack)-1], string(t))
		case xml.Comment:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].AppendChild(&model.Node{Kind: model.CommentNode, Text: string(t)})
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", common.ErrParse)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed element <%s>", common.ErrParse, stack[len(stack)-1].Name)
	}

	return root, nil
}

func convertAttrs(attrs []xml.Attr) []model.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]model.Attr, 0, len(attrs))
	for _, a := range attrs {
		name := a.Name.Local
		if a.Name.Space == "xmlns" {
			name = "xmlns:" + name
		}
		out = append(out, model.Attr{Name: name, Value: a.Value})
	}
	return out
}

// appendText merges adjacent character data into a single text node.
func appendText(parent *model.Node, text string) {
	if n := len(parent.Children); n > 0 && parent.Children[n-1].Kind == model.TextNode {
		parent.Children[n-1].Text += text
		return
	}
	parent.AppendChild(&model.Node{Kind: model.TextNode, Text: text})
}
