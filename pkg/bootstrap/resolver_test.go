package bootstrap_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/bootstrap"
)

func TestDefaultChain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want bootstrap.Resolution
		ok   bool
	}{
		{"/s/maria", bootstrap.Resolution{Slug: "maria"}, true},
		{"/s/maria/", bootstrap.Resolution{Slug: "maria"}, true},
		{"/maria", bootstrap.Resolution{Slug: "maria"}, true},
		{"/maria/", bootstrap.Resolution{Slug: "maria"}, true},
		{"/?site=abc123", bootstrap.Resolution{SiteID: "abc123"}, true},
		{"/s/maria?site=abc123", bootstrap.Resolution{SiteID: "abc123"}, true},
		{"/?slug=maria", bootstrap.Resolution{Slug: "maria"}, true},
		{"/s/maria?slug=other", bootstrap.Resolution{Slug: "maria"}, true},
		{"/api/foo", bootstrap.Resolution{}, false},
		{"/api", bootstrap.Resolution{}, false},
		{"/favicon.ico", bootstrap.Resolution{}, false},
		{"/logo.png", bootstrap.Resolution{}, false},
		{"/ADMIN", bootstrap.Resolution{}, false},
		{"/s/", bootstrap.Resolution{}, false},
		{"/", bootstrap.Resolution{}, false},
		{"/api?slug=maria", bootstrap.Resolution{Slug: "maria"}, true},
	}

	chain := bootstrap.DefaultChain()
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			u, err := url.Parse(tt.url)
			require.NoError(t, err)

			got, ok := chain.Resolve(u)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultChain_CustomReserved(t *testing.T) {
	t.Parallel()

	chain := bootstrap.DefaultChain("blog")

	u, _ := url.Parse("/blog")
	_, ok := chain.Resolve(u)
	assert.False(t, ok)

	u, _ = url.Parse("/api")
	got, ok := chain.Resolve(u)
	assert.True(t, ok)
	assert.Equal(t, "api", got.Slug)
}
