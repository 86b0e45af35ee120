package editor

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/sitekit/pkg/cache"
	"github.com/dmitrymomot/sitekit/pkg/editor"
	"github.com/dmitrymomot/sitekit/pkg/logger"
	"github.com/dmitrymomot/sitekit/pkg/siteapi"
	"github.com/dmitrymomot/sitekit/pkg/storage"
)

// Module serves editing sessions.
type Module struct {
	store      storage.Store
	api        editor.BatchUpdater
	cfg        Config
	workspaces *cache.LRU[string, *editor.Editor]
	logger     *slog.Logger
}

// New creates the module. Pages are read from store and saved through api,
// which must take its credential from the request context (see
// siteapi.ContextToken): every request carries the caller's own token and
// the module never saves with a shared one.
func New(store storage.Store, api editor.BatchUpdater, cfg Config, log *slog.Logger) *Module {
	cfg = cfg.withDefaults()
	log = logger.OrDiscard(log).With(logger.Component("modules.editor"))
	return &Module{
		store: store,
		api:   api,
		cfg:   cfg,
		workspaces: cache.NewLRU[string, *editor.Editor](cfg.Workspaces,
			// unsaved edits exist only in the workspace
			cache.WithPinned(func(_ string, ed *editor.Editor) bool {
				return ed.State().DirtyCount() > 0
			}),
			cache.WithEvictCallback(func(_ string, _ *editor.Editor) {
				log.Debug("workspace evicted")
			}),
		),
		logger: log,
	}
}

// Handle returns the module router. Requests without a token are refused.
//
//	r.Mount(cfg.BasePath, editor.New(store, api, cfg, log).Handle())
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(m.authenticate)
	r.Route("/{siteID}/{page}", func(r chi.Router) {
		r.Get("/", m.page)
		r.Post("/input", m.input)
		r.Post("/save", m.save)
	})
	return r
}

// authenticate takes the caller's site API token from the Authorization
// header or the token cookie and stores it in the request context.
func (m *Module) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if c, err := r.Cookie(m.cfg.TokenCookie); err == nil {
				token = strings.TrimSpace(c.Value)
			}
		}
		if token == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(siteapi.WithToken(r.Context(), token)))
	})
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// inputSignals are the datastar signals an edit posts.
type inputSignals struct {
	Path  string `json:"path"`
	Type  string `json:"type"`
	Value string `json:"value"`
	Event string `json:"event"`
}

func (m *Module) workspace(r *http.Request) (*editor.Editor, error) {
	siteID, page := chi.URLParam(r, "siteID"), chi.URLParam(r, "page")
	if !validSegment(siteID) || !validSegment(page) {
		return nil, storage.ErrInvalidKey
	}
	key := credentialKey(siteapi.TokenFromContext(r.Context())) + "/" + workspaceKey(siteID, page)
	return m.workspaces.GetOrLoad(key, func() (*editor.Editor, error) {
		return m.openWorkspace(r.Context(), siteID, page)
	})
}

func (m *Module) page(w http.ResponseWriter, r *http.Request) {
	ed, err := m.workspace(r)
	if err != nil {
		m.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ed.Render(w); err != nil {
		m.logger.ErrorContext(r.Context(), "render editable page", logger.Error(err))
	}
}

func (m *Module) input(w http.ResponseWriter, r *http.Request) {
	ed, err := m.workspace(r)
	if err != nil {
		m.fail(w, r, err)
		return
	}

	var sig inputSignals
	if err := datastar.ReadSignals(r, &sig); err != nil {
		http.Error(w, "invalid signals", http.StatusBadRequest)
		return
	}
	if _, err := ed.Input(sig.Path, sig.Type, sig.Value, sig.Event); err != nil {
		m.logger.WarnContext(r.Context(), "rejected edit", logger.ContentPath(sig.Path), logger.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	m.patch(w, r, ed, ed.Config().SaveButtonID, ed.Config().StatusID)
}

func (m *Module) save(w http.ResponseWriter, r *http.Request) {
	ed, err := m.workspace(r)
	if err != nil {
		m.fail(w, r, err)
		return
	}

	// a failed save is shown in the status element; the response still patches
	if err := ed.HandleSave(r.Context()); err != nil {
		m.logger.WarnContext(r.Context(), "save failed", logger.Error(err))
	}

	cfg := ed.Config()
	m.patch(w, r, ed, cfg.ContentID, cfg.SaveButtonID, cfg.StatusID)
}

// patch sends the current markup of the elements with ids as datastar
// element patches.
func (m *Module) patch(w http.ResponseWriter, r *http.Request, ed *editor.Editor, ids ...string) {
	sse := datastar.NewSSE(w, r)
	for _, id := range ids {
		markup := ed.Fragment(id)
		if markup == "" {
			continue
		}
		if err := sse.PatchElements(markup, datastar.WithSelector("#"+id)); err != nil {
			m.logger.WarnContext(r.Context(), "patch element", slog.String("id", id), logger.Error(err))
			return
		}
	}
}

func (m *Module) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "page not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrInvalidKey):
		http.Error(w, "invalid page", http.StatusBadRequest)
	default:
		m.logger.ErrorContext(r.Context(), "open workspace", logger.Error(err))
		http.Error(w, "failed to open page", http.StatusInternalServerError)
	}
}

func validSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
