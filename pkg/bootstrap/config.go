package bootstrap

// Config is the env configuration of the public site entry point.
type Config struct {
	RuntimeScriptURL string   `env:"SITE_RUNTIME_URL" envDefault:"/static/runtime.js"`
	Title            string   `env:"SITE_TITLE" envDefault:"Site"`
	DefaultPage      string   `env:"SITE_DEFAULT_PAGE" envDefault:"home"`
	ReservedSlugs    []string `env:"SITE_RESERVED_SLUGS" envSeparator:","`
}

// RenderConfig is what the site runtime is started with.
type RenderConfig struct {
	SiteID string `json:"siteId"`
	Page   string `json:"page,omitempty"`
}
