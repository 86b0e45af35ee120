package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/dom"
	"github.com/dmitrymomot/sitekit/pkg/editor"
)

func TestApplyBindings(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(`<div id="scope">
<h1 id="t" data-bind="hero.title">old</h1>
<div id="b" data-bind-html="bio.body"></div>
<p id="i" data-bind="items[1].name">x</p>
<p id="m" data-bind="missing.path">keep</p>
<section id="s" style="margin: 0; color: black" data-style-bind="color:theme.text; background-color:theme.bg"></section>
</div>
<h2 id="outside" data-bind="hero.title">outside</h2>`)
	require.NoError(t, err)

	compiled := []byte(`{
		"hero": {"title": "New title"},
		"bio": {"body": "<em>hi</em>"},
		"items": [{"name": "first"}, {"name": "second"}],
		"theme": {"text": "red", "bg": "#fff"}
	}`)

	n := editor.ApplyBindings(doc, doc.ByID("scope"), compiled)
	assert.Equal(t, 4, n)

	assert.Equal(t, "New title", doc.ByID("t").Text())
	assert.Equal(t, "<em>hi</em>", doc.ByID("b").InnerHTML())
	assert.Equal(t, "second", doc.ByID("i").Text())
	assert.Equal(t, "keep", doc.ByID("m").Text())
	assert.Equal(t, "outside", doc.ByID("outside").Text())

	style, _ := doc.ByID("s").Attr("style")
	assert.Equal(t, "margin: 0; color: red; background-color: #fff", style)
}

func TestApplyBindings_NoChangeWhenEqual(t *testing.T) {
	t.Parallel()

	doc, err := dom.ParseString(`<section style="color: red" data-style-bind="color:c"></section>`)
	require.NoError(t, err)

	assert.Zero(t, editor.ApplyBindings(doc, nil, []byte(`{"c":"red"}`)))
}
