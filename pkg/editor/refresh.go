package editor

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrymomot/sitekit/pkg/dom"
)

// DefaultPage is the dispatch key of the fallback refresh routine.
const DefaultPage = ""

// RefreshContext is what a refresh routine works with.
type RefreshContext struct {
	Doc     *dom.Document
	State   *State
	Overlay Attacher
}

// RefreshFunc re-renders a page after its compiled content changed.
type RefreshFunc func(ctx context.Context, rc RefreshContext) error

// Refresher dispatches page refreshes by page identifier.
type Refresher struct {
	mu     sync.RWMutex
	routes map[string]RefreshFunc
}

// NewRefresher creates a refresher whose default entry is fallback, or
// ContainerRefresh("content") when fallback is nil.
func NewRefresher(fallback RefreshFunc) *Refresher {
	if fallback == nil {
		fallback = ContainerRefresh("content")
	}
	return &Refresher{routes: map[string]RefreshFunc{DefaultPage: fallback}}
}

// Register sets the refresh routine of page. Registering DefaultPage
// replaces the fallback; a nil fn removes a page entry.
func (r *Refresher) Register(page string, fn RefreshFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn == nil {
		if page != DefaultPage {
			delete(r.routes, page)
		}
		return
	}
	r.routes[page] = fn
}

// Lookup returns the routine for page, falling back to the default entry.
func (r *Refresher) Lookup(page string) RefreshFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.routes[page]; ok {
		return fn
	}
	return r.routes[DefaultPage]
}

// Refresh runs the routine for page.
func (r *Refresher) Refresh(ctx context.Context, page string, rc RefreshContext) error {
	return r.Lookup(page)(ctx, rc)
}

// ContainerRefresh returns a routine that re-applies data bindings inside
// the element with containerID (the document root if there is none), drops
// listeners of replaced nodes and re-attaches editable listeners there.
func ContainerRefresh(containerID string) RefreshFunc {
	return func(_ context.Context, rc RefreshContext) error {
		scope := rc.Doc.ByID(containerID)
		if scope == nil {
			scope = rc.Doc.Root()
		}
		compiled, err := rc.State.CompiledJSON()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
		ApplyBindings(rc.Doc, scope, compiled)
		rc.Doc.Prune()
		if rc.Overlay != nil {
			rc.Overlay.AttachEditableListeners(scope)
		}
		return nil
	}
}
