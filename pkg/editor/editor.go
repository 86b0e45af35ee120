package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/sitekit/pkg/dom"
	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// Editor makes one rendered page editable. It is safe for concurrent use;
// access to the document is serialised.
type Editor struct {
	mu  sync.Mutex
	doc *dom.Document
	cfg Config

	state       *State
	controls    *SaveControls
	overlay     *Overlay
	coordinator *Coordinator
	refresher   *Refresher
	snapshots   SnapshotLoader
	pageRefresh map[string]RefreshFunc
	page        atomic.Value
	logger      *slog.Logger
}

var _ Editing = (*Editor)(nil)

// New creates an editor for doc that saves through api. Without WithState
// the initial state is read from the document (see LoadState).
func New(doc *dom.Document, api BatchUpdater, opts ...Option) (*Editor, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if api == nil {
		return nil, ErrNilUpdater
	}

	e := &Editor{
		doc:         doc,
		cfg:         DefaultConfig(),
		pageRefresh: make(map[string]RefreshFunc),
		logger:      logger.Discard(),
	}
	e.page.Store("")
	for _, opt := range opts {
		opt(e)
	}

	if e.state == nil {
		state, err := LoadState(doc)
		if err != nil {
			return nil, err
		}
		e.state = state
	}

	e.controls = NewSaveControls(doc, e.cfg.SaveButtonID, e.cfg.StatusID)
	e.refresher = NewRefresher(ContainerRefresh(e.cfg.ContentID))
	for page, fn := range e.pageRefresh {
		e.refresher.Register(page, fn)
	}
	e.coordinator = NewCoordinator(CoordinatorDeps{
		State:     e.state,
		Controls:  e.controls,
		API:       api,
		Snapshots: e.snapshots,
		Refresh:   e.refreshLocked,
		DocLock:   &e.mu,
		Logger:    e.logger,
	})
	e.overlay = NewOverlay(doc, e.state, e.controls, e.coordinator.InFlight, e.logger)

	e.controls.Refresh(e.state.DirtyCount(), false)
	return e, nil
}

// AttachEditableListeners attaches the overlay under scope (nil for the
// whole document) and returns the number of editable regions.
func (e *Editor) AttachEditableListeners(scope *dom.Element) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.overlay.AttachEditableListeners(scope)
}

// HandleSave persists the pending edits. See Coordinator.HandleSave.
func (e *Editor) HandleSave(ctx context.Context) error {
	return e.coordinator.HandleSave(ctx)
}

// Input reports a browser edit: the region bound to path now holds value
// and event fired on it. It returns how many handlers ran.
func (e *Editor) Input(path, typ, value, event string) (int, error) {
	if event != EventInput && event != EventBlur {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedEvent, event)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	el := e.doc.FindAttr(AttrPath, path)
	if el == nil || !el.HasAttr(AttrEditable) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	if ParseEditType(typ) == TypeHTML {
		if err := el.SetInnerHTML(value); err != nil {
			return 0, err
		}
	} else {
		el.SetText(value)
	}
	return e.doc.Dispatch(el, event), nil
}

// RegisterPageRefresh sets the refresh routine of a page.
func (e *Editor) RegisterPageRefresh(page string, fn RefreshFunc) {
	e.refresher.Register(page, fn)
}

// Refresh re-renders the active page from the current state.
func (e *Editor) Refresh(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.refreshLocked(ctx)
}

func (e *Editor) refreshLocked(ctx context.Context) error {
	return e.refresher.Refresh(ctx, e.Page(), RefreshContext{
		Doc:     e.doc,
		State:   e.state,
		Overlay: e.overlay,
	})
}

// Page returns the active page identifier.
func (e *Editor) Page() string {
	return e.page.Load().(string)
}

// SetPage changes the active page identifier.
func (e *Editor) SetPage(page string) {
	e.page.Store(page)
}

// State returns the editor state.
func (e *Editor) State() *State { return e.state }

// Config returns the element ids in use.
func (e *Editor) Config() Config { return e.cfg }

// Status returns the save status text.
func (e *Editor) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controls.Status()
}

// Render writes the document.
func (e *Editor) Render(w io.Writer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Render(w)
}

// Fragment returns the outer HTML of the element with id, or "" if absent.
func (e *Editor) Fragment(id string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if el := e.doc.ByID(id); el != nil {
		return el.OuterHTML()
	}
	return ""
}

// View runs fn with exclusive access to the document.
func (e *Editor) View(fn func(doc *dom.Document)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.doc)
}
