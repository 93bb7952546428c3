// Package xmlbuilder provides an ordered XML element tree for building
// documents whose element ordering, attributes and text formatting are
// dictated by an external schema. encoding/xml struct marshalling cannot
// express per-node attribute maps with guaranteed child ordering, so the
// tree is written out by hand.
package xmlbuilder

import (
	"bytes"
	"strings"
)

// Attr is a single element attribute. Attributes keep insertion order.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the document tree: either a leaf with text content
// or a container with ordered children.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// NewElement creates an element with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// SetAttr appends an attribute to the element and returns the element.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// AddChild appends a child element and returns the child.
func (e *Element) AddChild(name string) *Element {
	child := NewElement(name)
	e.Children = append(e.Children, child)
	return child
}

// AddText appends a leaf child with text content and returns the parent,
// so consecutive fields chain naturally.
func (e *Element) AddText(name, text string) *Element {
	child := e.AddChild(name)
	child.Text = text
	return e
}

// Document wraps a root element with the standard XML declaration.
type Document struct {
	Root *Element
}

// NewDocument creates a document with the given root element name.
func NewDocument(rootName string) *Document {
	return &Document{Root: NewElement(rootName)}
}

// Bytes serializes the document with the declaration prefix. The tree is
// materialized in full before serialization; the output is immutable.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	writeElement(&buf, d.Root)
	return buf.Bytes()
}

// String returns the serialized document as text.
func (d *Document) String() string {
	return string(d.Bytes())
}

func writeElement(buf *bytes.Buffer, e *Element) {
	buf.WriteByte('<')
	buf.WriteString(e.Name)
	for _, attr := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(attr.Name)
		buf.WriteString("=\"")
		buf.WriteString(escape(attr.Value))
		buf.WriteByte('"')
	}

	if len(e.Children) == 0 && e.Text == "" {
		buf.WriteString("/>")
		return
	}

	buf.WriteByte('>')
	if e.Text != "" {
		buf.WriteString(escape(e.Text))
	}
	for _, child := range e.Children {
		writeElement(buf, child)
	}
	buf.WriteString("</")
	buf.WriteString(e.Name)
	buf.WriteByte('>')
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
