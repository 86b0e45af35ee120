package editor

import (
	"context"

	"github.com/dmitrymomot/sitekit/pkg/dom"
	"github.com/dmitrymomot/sitekit/pkg/siteapi"
)

// EditType tells how an editable region's content is read.
type EditType string

const (
	TypeText EditType = "text"
	TypeHTML EditType = "html"
)

// ParseEditType maps a data-type attribute value to an EditType. Anything
// other than "html" is text.
func ParseEditType(s string) EditType {
	if s == string(TypeHTML) {
		return TypeHTML
	}
	return TypeText
}

// Edit is one pending change of a content path.
type Edit struct {
	Type  EditType
	Value string
}

// Wire types of the batch endpoint.
type (
	Update        = siteapi.Update
	BatchRequest  = siteapi.BatchRequest
	BatchResponse = siteapi.BatchResponse
)

// BatchUpdater persists a batch of edits. *siteapi.Client implements it.
type BatchUpdater interface {
	UpdateContentBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error)
}

// SnapshotLoader loads compiled content the server stored out of band, used
// when a save response carries compiledJsonPath instead of compiled.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, path string) (map[string]any, error)
}

// SnapshotFunc adapts a function to SnapshotLoader.
type SnapshotFunc func(ctx context.Context, path string) (map[string]any, error)

func (f SnapshotFunc) LoadSnapshot(ctx context.Context, path string) (map[string]any, error) {
	return f(ctx, path)
}

// Editing is the capability page renderers receive to make their output
// editable.
type Editing interface {
	AttachEditableListeners(scope *dom.Element) int
	HandleSave(ctx context.Context) error
}

// Attacher attaches editable listeners under a scope element.
type Attacher interface {
	AttachEditableListeners(scope *dom.Element) int
}
