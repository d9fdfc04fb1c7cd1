package ingest

import (
	"encoding/xml"
	"io"

	"github.com/jameshanlon/netlist-paths/errs"
)

// node is a lightweight in-memory tree built from the document, playing
// the same role as the rapidxml DOM the original reader walked: ingest
// needs random re-visitation (the type table is read twice) which a
// single forward streaming pass cannot support.
type node struct {
	Tag      string
	Attrs    map[string]string
	Children []*node
}

// Attr returns the value of attribute name, or "" if absent.
func (n *node) Attr(name string) string {
	return n.Attrs[name]
}

// HasAttr reports whether attribute name is present.
func (n *node) HasAttr(name string) bool {
	_, ok := n.Attrs[name]
	return ok
}

// FirstChild returns the first child tagged tag, or nil.
func (n *node) FirstChild(tag string) *node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// parseDocument decodes r into a node tree rooted at the document element.
func parseDocument(r io.Reader) (*node, error) {
	dec := xml.NewDecoder(r)
	var stack []*node
	var root *node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.InvalidDocument, "", "malformed XML", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{Tag: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = n
			}
		}
	}
	if root == nil {
		return nil, errs.New(errs.InvalidDocument, "", "empty or malformed document")
	}
	return root, nil
}
