package bootstrap

import (
	"net/url"
	"strings"
)

// DefaultReserved are root segments that never name a site.
var DefaultReserved = []string{
	"api", "s", "static", "assets", "admin", "editor",
	"healthz", "favicon.ico", "robots.txt", "login", "logout",
}

// Resolution is what a URL says about the site to render. Exactly one of
// SiteID and Slug is set.
type Resolution struct {
	SiteID string
	Slug   string
	Page   string
}

// Direct reports whether the URL carried the site identifier itself.
func (r Resolution) Direct() bool { return r.SiteID != "" }

// Resolver extracts a site reference from a URL.
type Resolver interface {
	Resolve(u *url.URL) (Resolution, bool)
}

// SiteIDQuery reads a site identifier from a query parameter.
type SiteIDQuery struct {
	Param string
}

func (r SiteIDQuery) Resolve(u *url.URL) (Resolution, bool) {
	id := strings.TrimSpace(u.Query().Get(r.Param))
	return Resolution{SiteID: id}, id != ""
}

// PrefixSlug reads the slug following a path prefix, e.g. /s/<slug>.
type PrefixSlug struct {
	Prefix string
}

func (r PrefixSlug) Resolve(u *url.URL) (Resolution, bool) {
	rest, ok := strings.CutPrefix(u.Path, r.Prefix)
	if !ok {
		return Resolution{}, false
	}
	slug, _, _ := strings.Cut(rest, "/")
	slug = strings.TrimSpace(slug)
	return Resolution{Slug: slug}, slug != ""
}

// RootSlug reads a slug from a single-segment path, e.g. /<slug>. Reserved
// words and segments with a dot (file names) are rejected.
type RootSlug struct {
	Reserved map[string]struct{}
}

// NewRootSlug creates a RootSlug rejecting the given words.
func NewRootSlug(reserved ...string) RootSlug {
	set := make(map[string]struct{}, len(reserved))
	for _, w := range reserved {
		set[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return RootSlug{Reserved: set}
}

func (r RootSlug) Resolve(u *url.URL) (Resolution, bool) {
	seg := strings.Trim(u.Path, "/")
	if seg == "" || strings.ContainsAny(seg, "/.") {
		return Resolution{}, false
	}
	if _, reserved := r.Reserved[strings.ToLower(seg)]; reserved {
		return Resolution{}, false
	}
	return Resolution{Slug: seg}, true
}

// SlugQuery reads a slug from a query parameter.
type SlugQuery struct {
	Param string
}

func (r SlugQuery) Resolve(u *url.URL) (Resolution, bool) {
	slug := strings.TrimSpace(u.Query().Get(r.Param))
	return Resolution{Slug: slug}, slug != ""
}

// Chain tries resolvers in order and returns the first match.
type Chain []Resolver

func (c Chain) Resolve(u *url.URL) (Resolution, bool) {
	for _, r := range c {
		if res, ok := r.Resolve(u); ok {
			return res, true
		}
	}
	return Resolution{}, false
}

// DefaultChain is site id query, /s/ prefix, root slug, slug query. With no
// reserved words given, DefaultReserved is used.
func DefaultChain(reserved ...string) Chain {
	if len(reserved) == 0 {
		reserved = DefaultReserved
	}
	return Chain{
		SiteIDQuery{Param: "site"},
		PrefixSlug{Prefix: "/s/"},
		NewRootSlug(reserved...),
		SlugQuery{Param: "slug"},
	}
}
