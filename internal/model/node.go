// Package model defines the core data types shared across typesplit.
package model

import "strings"

// NodeKind distinguishes the kinds of nodes kept in a parsed document.
type NodeKind int

const (
	// ElementNode is an XML element with attributes and children.
	ElementNode NodeKind = iota
	// TextNode holds character data.
	TextNode
	// CommentNode holds the body of an XML comment.
	CommentNode
)

// Attr is a single XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is a generic XML node. Attribute and child order is preserved
// exactly as read so elements can be re-emitted without losing content.
type Node struct {
	Name     string
	Text     string
	Attrs    []Attr
	Children []*Node
	Kind     NodeKind
}

// NewElement creates an element node with the given attributes.
func NewElement(name string, attrs ...Attr) *Node {
	return &Node{Kind: ElementNode, Name: name, Attrs: attrs}
}

// Attr returns the value of the named attribute and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == ElementNode && c.Name == name {
			return c
		}
	}
	return nil
}

// Elements returns the direct child elements with the given name.
// An empty name returns every child element.
func (n *Node) Elements(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Kind != ElementNode {
			continue
		}
		if name == "" || c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Descendants returns every element below n with the given name, in document order.
func (n *Node) Descendants(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Kind != ElementNode {
			continue
		}
		if c.Name == name {
			out = append(out, c)
		}
		out = append(out, c.Descendants(name)...)
	}
	return out
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// IsBlank reports whether the node is a text node holding only whitespace.
func (n *Node) IsBlank() bool {
	return n.Kind == TextNode && strings.TrimSpace(n.Text) == ""
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Name: n.Name, Text: n.Text}
	if n.Attrs != nil {
		c.Attrs = make([]Attr, len(n.Attrs))
		copy(c.Attrs, n.Attrs)
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}
