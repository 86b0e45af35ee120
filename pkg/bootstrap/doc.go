// Package bootstrap turns a public site URL into the configuration the site
// runtime renders with.
//
// A URL names a site in one of four ways, tried in this order:
//
//	/?site=abc123     site identifier, used directly
//	/s/maria          prefixed slug
//	/maria            root slug, unless reserved (api, static, ...) or dotted
//	/?slug=maria      query slug
//
// Slugs are mapped to site identifiers through a SiteLookup (the website
// API's public site endpoint). The optional ?page parameter selects the
// page to render.
//
// Bootstrapper.Run hands the outcome to a Target: Boot with a RenderConfig
// on success, or Message with one of the fixed user-facing messages when the
// slug is missing, unknown, or the runtime fails to start. Failures are
// logged, never returned.
//
//	b := bootstrap.New(apiClient, bootstrap.WithLogger(log))
//	err := b.Run(ctx, r.URL, target)
//
// ShellRuntime and MessagePage are templ components for serving both
// outcomes as HTML.
package bootstrap
