package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// SiteLookup maps a public slug to a site identifier.
type SiteLookup interface {
	LookupSite(ctx context.Context, slug string) (string, error)
}

// Target receives the outcome of Run.
type Target interface {
	Boot(ctx context.Context, cfg RenderConfig) error
	Message(ctx context.Context, msg string) error
}

// Bootstrapper resolves site URLs and starts the runtime.
type Bootstrapper struct {
	chain       Resolver
	lookup      SiteLookup
	defaultPage string
	logger      *slog.Logger
}

// Option configures a Bootstrapper.
type Option func(*Bootstrapper)

// WithChain replaces DefaultChain().
func WithChain(r Resolver) Option {
	return func(b *Bootstrapper) {
		if r != nil {
			b.chain = r
		}
	}
}

// WithDefaultPage sets the page used when the URL has no ?page.
func WithDefaultPage(page string) Option {
	return func(b *Bootstrapper) {
		b.defaultPage = page
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bootstrapper) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Bootstrapper resolving slugs through lookup.
func New(lookup SiteLookup, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		chain:  DefaultChain(),
		lookup: lookup,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resolve returns what u says about the site, without looking anything up.
func (b *Bootstrapper) Resolve(u *url.URL) (Resolution, bool) {
	res, ok := b.chain.Resolve(u)
	if !ok {
		return Resolution{}, false
	}
	res.Page = strings.TrimSpace(u.Query().Get("page"))
	if res.Page == "" {
		res.Page = b.defaultPage
	}
	return res, true
}

// Config resolves u to a RenderConfig, looking slugs up when needed.
func (b *Bootstrapper) Config(ctx context.Context, u *url.URL) (RenderConfig, error) {
	res, ok := b.Resolve(u)
	if !ok {
		return RenderConfig{}, ErrNoSlug
	}
	cfg := RenderConfig{SiteID: res.SiteID, Page: res.Page}
	if res.Direct() {
		return cfg, nil
	}

	if b.lookup == nil {
		return RenderConfig{}, errors.Join(ErrSiteNotFound, ErrNoLookup)
	}
	id, err := b.lookup.LookupSite(ctx, res.Slug)
	if err != nil {
		return RenderConfig{}, errors.Join(ErrSiteNotFound, err)
	}
	if id == "" {
		return RenderConfig{}, ErrSiteNotFound
	}
	cfg.SiteID = id
	return cfg, nil
}

// Run resolves u and boots target, or shows target a fixed message when
// that fails. Only the error of writing that message is returned.
func (b *Bootstrapper) Run(ctx context.Context, u *url.URL, target Target) error {
	cfg, err := b.Config(ctx, u)
	switch {
	case errors.Is(err, ErrNoSlug):
		b.logger.InfoContext(ctx, "no site in url", slog.String("path", u.Path))
		return target.Message(ctx, MessageMissingSlug)
	case err != nil:
		b.logger.WarnContext(ctx, "site lookup failed",
			logger.Component("bootstrap"),
			slog.String("path", u.Path),
			logger.Error(err),
		)
		return target.Message(ctx, MessageSiteNotFound)
	}

	if err := boot(ctx, target, cfg); err != nil {
		b.logger.ErrorContext(ctx, "site runtime failed",
			logger.Component("bootstrap"),
			logger.SiteID(cfg.SiteID),
			logger.Page(cfg.Page),
			logger.Error(err),
		)
		return target.Message(ctx, MessageLoadFailed)
	}

	b.logger.DebugContext(ctx, "site booted", logger.SiteID(cfg.SiteID), logger.Page(cfg.Page))
	return nil
}

func boot(ctx context.Context, target Target, cfg RenderConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrBootPanic, r)
		}
	}()
	return target.Boot(ctx, cfg)
}
