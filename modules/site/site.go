// Package site serves published sites: it resolves the site named by the
// URL and answers with the runtime shell or a fixed message page.
package site

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sitekit/pkg/bootstrap"
	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// Module is the public site entry point.
type Module struct {
	boot   *bootstrap.Bootstrapper
	cfg    bootstrap.Config
	logger *slog.Logger
}

// New creates the module.
func New(boot *bootstrap.Bootstrapper, cfg bootstrap.Config, log *slog.Logger) *Module {
	return &Module{boot: boot, cfg: cfg, logger: logger.OrDiscard(log)}
}

// Handle returns the module router.
//
//	r.Mount("/", site.New(boot, cfg, log).Handle())
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", m.serve)
	r.Get("/s/{slug}", m.serve)
	r.Get("/{slug}", m.serve)
	return r
}

func (m *Module) serve(w http.ResponseWriter, r *http.Request) {
	t := &httpTarget{w: w, cfg: m.cfg}
	if err := m.boot.Run(r.Context(), r.URL, t); err != nil {
		m.logger.ErrorContext(r.Context(), "write site response", logger.Error(err))
	}
}

// httpTarget answers a bootstrap outcome as an HTML page. Boot renders into
// a buffer first so a failing render can still be answered with a message.
type httpTarget struct {
	w   http.ResponseWriter
	cfg bootstrap.Config
}

func (t *httpTarget) Boot(ctx context.Context, cfg bootstrap.RenderConfig) error {
	var buf bytes.Buffer
	if err := bootstrap.ShellRuntime(t.cfg.Title, cfg, t.cfg.RuntimeScriptURL).Render(ctx, &buf); err != nil {
		return err
	}
	t.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t.w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(t.w)
	return err
}

func (t *httpTarget) Message(ctx context.Context, msg string) error {
	t.w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t.w.WriteHeader(messageStatus(msg))
	return bootstrap.MessagePage(t.cfg.Title, msg).Render(ctx, t.w)
}

func messageStatus(msg string) int {
	switch msg {
	case bootstrap.MessageMissingSlug:
		return http.StatusBadRequest
	case bootstrap.MessageSiteNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
