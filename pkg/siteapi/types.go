package siteapi

import "time"

// Update is one content change in a batch.
type Update struct {
	Path  string `json:"path"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// BatchRequest is the body of update-content-batch. Version is omitted when
// nil; callers leave it nil until the server has assigned one.
type BatchRequest struct {
	Version *int64   `json:"version,omitempty"`
	Updates []Update `json:"updates"`
}

// BatchResponse is the server's answer to a batch update. Every field is
// optional.
type BatchResponse struct {
	Compiled         map[string]any `json:"compiled,omitempty"`
	Version          *int64         `json:"version,omitempty"`
	CompiledJSONPath string         `json:"compiledJsonPath,omitempty"`
}

type siteLookupResponse struct {
	ArtistID string `json:"artistId"`
}

// Config is the env configuration for the client.
type Config struct {
	BaseURL   string        `env:"SITE_API_URL,required"`
	Token     string        `env:"SITE_API_TOKEN"`
	TokenFile string        `env:"SITE_API_TOKEN_FILE"`
	Timeout   time.Duration `env:"SITE_API_TIMEOUT" envDefault:"30s"`
}

// TokenSource picks the token source described by the config: an explicit
// token wins over a token file.
func (c Config) TokenSource() TokenSource {
	switch {
	case c.Token != "":
		return StaticToken(c.Token)
	case c.TokenFile != "":
		return FileToken(c.TokenFile)
	default:
		return StaticToken("")
	}
}
