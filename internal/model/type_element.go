package model

// TypeElementName is the element name of a single type definition.
const TypeElementName = "type"

// TypeElement is one game-object definition from the source document.
// It wraps the parsed node so every attribute and child is kept verbatim.
type TypeElement struct {
	Node *Node
}

// Name returns the name attribute, or "" when it is absent.
func (t TypeElement) Name() string {
	name, _ := t.Node.Attr("name")
	return name
}

// HasName reports whether the element carries a non-empty name attribute.
func (t TypeElement) HasName() bool {
	return t.Name() != ""
}

// CategoryName returns the name of the category child, or "" when there is none.
func (t TypeElement) CategoryName() string {
	name, _ := t.Node.Child("category").Attr("name")
	return name
}

// Usages returns the name attribute of every usage child in document order.
func (t TypeElement) Usages() []string {
	var usages []string
	for _, u := range t.Node.Elements("usage") {
		if name, ok := u.Attr("name"); ok {
			usages = append(usages, name)
		}
	}
	return usages
}

// TypeElements returns the top-level type elements of a parsed types document.
func TypeElements(root *Node) []TypeElement {
	nodes := root.Elements(TypeElementName)
	elems := make([]TypeElement, 0, len(nodes))
	for _, n := range nodes {
		elems = append(elems, TypeElement{Node: n})
	}
	return elems
}
