package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a handle to an element node of a Document.
type Element struct {
	node *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{node: n}
}

// Node exposes the underlying html node.
func (e *Element) Node() *html.Node { return e.node }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.node.Data }

// ID returns the id attribute.
func (e *Element) ID() string {
	v, _ := e.Attr("id")
	return v
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present, whatever its value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// SetAttr sets or adds an attribute.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr drops an attribute if present.
func (e *Element) RemoveAttr(name string) {
	attrs := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		attrs = append(attrs, a)
	}
	e.node.Attr = attrs
}

// Text returns the concatenated text of all descendant text nodes, like
// the DOM textContent property.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return sb.String()
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(text string) {
	e.removeChildren()
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// InnerHTML serialises the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// SetInnerHTML parses markup as a fragment in the context of this element
// and replaces the element's children with it.
func (e *Element) SetInnerHTML(markup string) error {
	ctx := &html.Node{Type: html.ElementNode, Data: e.node.Data, DataAtom: atom.Lookup([]byte(e.node.Data))}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return err
	}
	e.removeChildren()
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
	return nil
}

// OuterHTML serialises the element itself.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	_ = html.Render(&sb, e.node)
	return sb.String()
}

// Children returns direct element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, wrap(c))
		}
	}
	return out
}

func (e *Element) removeChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}
