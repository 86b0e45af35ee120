// Package dom holds a parsed HTML page and lets Go code read and mutate it the
// way browser code would: attribute access, textContent/innerHTML, lookup by
// id or attribute, and element event listeners.
//
// Documents are parsed with golang.org/x/net/html. Elements are thin handles
// over *html.Node, so two handles for the same node are interchangeable.
//
// # Listeners
//
// Listeners are registered per element, event name and owner:
//
//	doc.On(el, "input", "editable", func(el *dom.Element) { ... })
//
// Registering again with the same owner replaces the earlier handler instead
// of stacking a second one, which makes attach passes safe to repeat after a
// re-render. Dispatch runs the handlers registered for the element and event.
//
// A Document is not safe for concurrent use; callers serialise access.
package dom
