package editor

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/sitekit/pkg/contentpath"
	"github.com/dmitrymomot/sitekit/pkg/dom"
)

// Binding attributes.
//
//	<span data-bind="hero.title"></span>
//	<div data-bind-html="bio.body"></div>
//	<section data-style-bind="color:theme.text;background-color:theme.bg"></section>
const (
	AttrBind      = "data-bind"
	AttrBindHTML  = "data-bind-html"
	AttrStyleBind = "data-style-bind"
)

// ApplyBindings fills bound elements under scope from compiled JSON and
// returns how many elements changed. Values missing from compiled leave the
// element as it is.
func ApplyBindings(doc *dom.Document, scope *dom.Element, compiled []byte) int {
	changed := 0

	for _, el := range doc.QueryAttr(scope, AttrBind) {
		path, _ := el.Attr(AttrBind)
		if res := lookup(compiled, path); res.Exists() {
			el.SetText(res.String())
			changed++
		}
	}

	for _, el := range doc.QueryAttr(scope, AttrBindHTML) {
		path, _ := el.Attr(AttrBindHTML)
		if res := lookup(compiled, path); res.Exists() {
			if err := el.SetInnerHTML(res.String()); err == nil {
				changed++
			}
		}
	}

	for _, el := range doc.QueryAttr(scope, AttrStyleBind) {
		spec, _ := el.Attr(AttrStyleBind)
		style, _ := el.Attr("style")
		updated := style
		for _, decl := range strings.Split(spec, ";") {
			prop, path, ok := strings.Cut(decl, ":")
			prop, path = strings.TrimSpace(prop), strings.TrimSpace(path)
			if !ok || prop == "" || path == "" {
				continue
			}
			if res := lookup(compiled, path); res.Exists() {
				updated = setStyleProperty(updated, prop, res.String())
			}
		}
		if updated != style {
			el.SetAttr("style", updated)
			changed++
		}
	}

	return changed
}

// lookup reads a content path (hero.title, items[2].name) from compiled JSON.
func lookup(compiled []byte, path string) gjson.Result {
	segments, ok := contentpath.Parse(path)
	if !ok {
		return gjson.Result{}
	}
	parts := make([]string, 0, len(segments)*2)
	for _, seg := range segments {
		parts = append(parts, gjson.Escape(seg.Name))
		if seg.HasIndex {
			parts = append(parts, strconv.Itoa(seg.Index))
		}
	}
	return gjson.GetBytes(compiled, strings.Join(parts, "."))
}

// setStyleProperty sets prop in an inline style declaration list, keeping
// the order of the other declarations.
func setStyleProperty(style, prop, value string) string {
	var decls []string
	found := false
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, _, _ := strings.Cut(decl, ":")
		if strings.EqualFold(strings.TrimSpace(name), prop) {
			decl = prop + ": " + value
			found = true
		}
		decls = append(decls, decl)
	}
	if !found {
		decls = append(decls, prop+": "+value)
	}
	return strings.Join(decls, "; ")
}
