package editor

import "github.com/dmitrymomot/sitekit/pkg/editor"

// Config is the env configuration of the editing module.
type Config struct {
	BasePath          string `env:"EDITOR_BASE_PATH" envDefault:"/editor"`
	Workspaces        int    `env:"EDITOR_WORKSPACES" envDefault:"64"`
	TokenCookie       string `env:"EDITOR_TOKEN_COOKIE" envDefault:"site_token"`
	DatastarScriptURL string `env:"EDITOR_DATASTAR_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"`
	Editor            editor.Config
}

func (c Config) withDefaults() Config {
	if c.BasePath == "" {
		c.BasePath = "/editor"
	}
	if c.Workspaces <= 0 {
		c.Workspaces = 64
	}
	if c.TokenCookie == "" {
		c.TokenCookie = "site_token"
	}
	d := editor.DefaultConfig()
	if c.Editor.SaveButtonID == "" {
		c.Editor.SaveButtonID = d.SaveButtonID
	}
	if c.Editor.StatusID == "" {
		c.Editor.StatusID = d.StatusID
	}
	if c.Editor.ContentID == "" {
		c.Editor.ContentID = d.ContentID
	}
	return c
}
