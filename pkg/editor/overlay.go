package editor

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sitekit/pkg/dom"
	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// Attributes that mark editable regions.
const (
	AttrEditable = "data-editable"
	AttrPath     = "data-path"
	AttrType     = "data-type"
)

// Events the overlay listens to.
const (
	EventInput = "input"
	EventBlur  = "blur"
)

// overlayOwner keys the overlay's listeners so attaching twice replaces
// rather than stacks them.
const overlayOwner = "editor.overlay"

// Overlay connects editable regions of the document to State.
type Overlay struct {
	doc      *dom.Document
	state    *State
	controls *SaveControls
	saving   func() bool
	logger   *slog.Logger
}

// NewOverlay creates an overlay. saving reports whether a save is in
// flight and may be nil.
func NewOverlay(doc *dom.Document, state *State, controls *SaveControls, saving func() bool, log *slog.Logger) *Overlay {
	if saving == nil {
		saving = func() bool { return false }
	}
	return &Overlay{
		doc:      doc,
		state:    state,
		controls: controls,
		saving:   saving,
		logger:   logger.OrDiscard(log),
	}
}

// AttachEditableListeners registers input and blur handlers on every
// editable region under scope (the whole document when scope is nil) and
// returns how many regions were attached. It never fails: regions without
// a path are skipped and a panic is logged.
func (o *Overlay) AttachEditableListeners(scope *dom.Element) (attached int) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("attach editable listeners",
				logger.Component("editor.overlay"),
				logger.Error(fmt.Errorf("panic: %v", r)),
			)
		}
	}()

	for _, el := range o.doc.QueryAttr(scope, AttrEditable) {
		path, _ := el.Attr(AttrPath)
		if path == "" {
			o.logger.Warn("editable element without path",
				logger.Component("editor.overlay"),
				slog.String("tag", el.Tag()),
			)
			continue
		}
		typ, _ := el.Attr(AttrType)
		handler := o.handler(path, ParseEditType(typ))

		for _, event := range []string{EventInput, EventBlur} {
			if err := o.doc.On(el, event, overlayOwner, handler); err != nil {
				o.logger.Warn("register listener", logger.ContentPath(path), logger.Error(err))
			}
		}
		attached++
	}
	return attached
}

func (o *Overlay) handler(path string, typ EditType) dom.Listener {
	return func(el *dom.Element) {
		value := el.Text()
		if typ == TypeHTML {
			value = el.InnerHTML()
		}
		if !o.state.Apply(path, Edit{Type: typ, Value: value}) {
			o.logger.Debug("edit not written to compiled state", logger.ContentPath(path))
		}
		o.controls.Refresh(o.state.DirtyCount(), o.saving())
	}
}
