package bootstrap

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"
)

// SiteConfigID is the id of the script element the runtime reads its
// RenderConfig from.
const SiteConfigID = "site-config"

// ShellRuntime renders the HTML shell that starts the site runtime with cfg.
func ShellRuntime(title string, cfg RenderConfig, runtimeURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		payload, err := json.Marshal(cfg)
		if err != nil {
			return err
		}
		return write(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(title), `</title></head><body>`,
			`<div id="app"></div>`,
			`<script type="application/json" id="`, SiteConfigID, `">`, string(payload), `</script>`,
			`<script type="module" src="`, templ.EscapeString(runtimeURL), `"></script>`,
			`</body></html>`,
		)
	})
}

// MessagePage renders a page showing only msg.
func MessagePage(title, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8">`,
			`<title>`, templ.EscapeString(title), `</title></head><body>`,
			`<main class="site-message"><p>`, templ.EscapeString(msg), `</p></main>`,
			`</body></html>`,
		)
	})
}

func write(w io.Writer, parts ...string) error {
	for _, p := range parts {
		if _, err := io.WriteString(w, p); err != nil {
			return err
		}
	}
	return nil
}
