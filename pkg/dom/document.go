package dom

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Listener handles an event dispatched to an element.
type Listener func(el *Element)

type listenerKey struct {
	node  *html.Node
	event string
}

// Document is a parsed HTML page with an element listener registry.
type Document struct {
	root      *html.Node
	listeners map[listenerKey]map[string]Listener
	order     map[listenerKey][]string
}

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return &Document{
		root:      root,
		listeners: make(map[listenerKey]map[string]Listener),
		order:     make(map[listenerKey][]string),
	}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the <html> element, or the first element of the tree.
func (d *Document) Root() *Element {
	var first *html.Node
	walk(d.root, func(n *html.Node) bool {
		first = n
		return false
	})
	return wrap(first)
}

// Body returns the <body> element if present.
func (d *Document) Body() *Element {
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Data == "body" {
			body = n
			return false
		}
		return true
	})
	return wrap(body)
}

// ByID returns the first element with the given id.
func (d *Document) ByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if wrap(n).ID() == id {
			found = n
			return false
		}
		return true
	})
	return wrap(found)
}

// QueryAttr returns scope and its descendants that carry attr, in document
// order. A nil scope searches the whole document.
func (d *Document) QueryAttr(scope *Element, attr string) []*Element {
	start := d.root
	if scope != nil {
		start = scope.node
	}
	var out []*Element
	walk(start, func(n *html.Node) bool {
		if el := wrap(n); el.HasAttr(attr) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// FindAttr returns the first element whose attr equals value.
func (d *Document) FindAttr(attr, value string) *Element {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if v, ok := wrap(n).Attr(attr); ok && v == value {
			found = n
			return false
		}
		return true
	})
	return wrap(found)
}

// Contains reports whether el belongs to this document.
func (d *Document) Contains(el *Element) bool {
	if el == nil {
		return false
	}
	for n := el.node; n != nil; n = n.Parent {
		if n == d.root {
			return true
		}
	}
	return false
}

// On registers fn for event on el under owner, replacing any handler the
// same owner registered earlier.
func (d *Document) On(el *Element, event, owner string, fn Listener) error {
	if el == nil {
		return ErrNilElement
	}
	key := listenerKey{node: el.node, event: event}
	byOwner, ok := d.listeners[key]
	if !ok {
		byOwner = make(map[string]Listener)
		d.listeners[key] = byOwner
	}
	if _, exists := byOwner[owner]; !exists {
		d.order[key] = append(d.order[key], owner)
	}
	byOwner[owner] = fn
	return nil
}

// Off removes the handler owner registered for event on el.
func (d *Document) Off(el *Element, event, owner string) {
	if el == nil {
		return
	}
	key := listenerKey{node: el.node, event: event}
	if _, ok := d.listeners[key][owner]; !ok {
		return
	}
	delete(d.listeners[key], owner)
	owners := d.order[key][:0]
	for _, o := range d.order[key] {
		if o != owner {
			owners = append(owners, o)
		}
	}
	d.order[key] = owners
}

// Listeners returns how many handlers are registered for event on el.
func (d *Document) Listeners(el *Element, event string) int {
	if el == nil {
		return 0
	}
	return len(d.listeners[listenerKey{node: el.node, event: event}])
}

// Dispatch runs the handlers for event on el in registration order and
// returns how many ran.
func (d *Document) Dispatch(el *Element, event string) int {
	if el == nil {
		return 0
	}
	key := listenerKey{node: el.node, event: event}
	owners := append([]string(nil), d.order[key]...)
	n := 0
	for _, owner := range owners {
		if fn, ok := d.listeners[key][owner]; ok {
			fn(el)
			n++
		}
	}
	return n
}

// Prune drops listeners of elements that are no longer attached to the
// document, e.g. after SetInnerHTML replaced a subtree. It returns how many
// element/event registrations were removed.
func (d *Document) Prune() int {
	removed := 0
	for key := range d.listeners {
		if !d.Contains(wrap(key.node)) {
			delete(d.listeners, key)
			delete(d.order, key)
			removed++
		}
	}
	return removed
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}

// walk visits element nodes depth-first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
