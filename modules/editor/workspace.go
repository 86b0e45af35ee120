package editor

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/sitekit/pkg/dom"
	"github.com/dmitrymomot/sitekit/pkg/editor"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/storage"
)

func workspaceKey(siteID, page string) string {
	return siteID + "/" + page
}

// credentialKey separates the workspaces of different tokens so edits are
// only ever saved with the credential of the user who made them.
func credentialKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// openWorkspace loads the rendered page and makes it editable.
func (m *Module) openWorkspace(ctx context.Context, siteID, page string) (*editor.Editor, error) {
	raw, err := m.store.Get(ctx, workspaceKey(siteID, page)+".html")
	if err != nil {
		return nil, err
	}
	doc, err := dom.Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	m.instrument(doc, siteID, page)

	ed, err := editor.New(doc, m.api,
		editor.WithConfig(m.cfg.Editor),
		editor.WithPage(page),
		editor.WithSnapshotLoader(jsonSnapshots(m.store)),
		editor.WithLogger(m.logger.With(logger.SiteID(siteID), logger.Page(page))),
	)
	if err != nil {
		return nil, err
	}
	n := ed.AttachEditableListeners(nil)
	m.logger.InfoContext(ctx, "workspace opened",
		logger.SiteID(siteID),
		logger.Page(page),
		logger.Count("editable", n),
	)
	return ed, nil
}

// instrument adds the datastar attributes that relay browser edits and the
// save action to this module, and loads the datastar client.
func (m *Module) instrument(doc *dom.Document, siteID, page string) {
	base := strings.TrimRight(m.cfg.BasePath, "/") + "/" + workspaceKey(siteID, page)

	for _, el := range doc.QueryAttr(nil, editor.AttrEditable) {
		path, _ := el.Attr(editor.AttrPath)
		if path == "" {
			continue
		}
		typ, _ := el.Attr(editor.AttrType)
		content := "el.textContent"
		if editor.ParseEditType(typ) == editor.TypeHTML {
			content = "el.innerHTML"
		}
		el.SetAttr("contenteditable", "true")
		for _, event := range []string{editor.EventInput, editor.EventBlur} {
			el.SetAttr("data-on:"+event, fmt.Sprintf(
				"$path=%s; $type=%s; $value=%s; $event=%s; @post(%s)",
				jsString(path), jsString(string(editor.ParseEditType(typ))), content, jsString(event), jsString(base+"/input"),
			))
		}
	}

	if btn := doc.ByID(m.cfg.Editor.SaveButtonID); btn != nil {
		btn.SetAttr("data-on:click", fmt.Sprintf("@post(%s)", jsString(base+"/save")))
	}

	if head := headOf(doc); head != nil && m.cfg.DatastarScriptURL != "" {
		head.Node().AppendChild(&html.Node{
			Type:     html.ElementNode,
			Data:     "script",
			DataAtom: atom.Script,
			Attr: []html.Attribute{
				{Key: "type", Val: "module"},
				{Key: "src", Val: m.cfg.DatastarScriptURL},
			},
		})
	}
}

func headOf(doc *dom.Document) *dom.Element {
	root := doc.Root()
	if root == nil {
		return nil
	}
	for _, c := range root.Children() {
		if c.Tag() == "head" {
			return c
		}
	}
	return nil
}

// jsString quotes s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func jsonSnapshots(store storage.Store) editor.SnapshotFunc {
	return func(ctx context.Context, path string) (map[string]any, error) {
		raw, err := store.Get(ctx, strings.TrimPrefix(path, "/"))
		if err != nil {
			return nil, err
		}
		var compiled map[string]any
		if err := json.Unmarshal(raw, &compiled); err != nil {
			return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
		}
		return compiled, nil
	}
}
