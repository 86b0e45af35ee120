package editor

import "errors"

var (
	ErrSaveFailed       = errors.New("editor: save failed")
	ErrNilDocument      = errors.New("editor: document is required")
	ErrNilUpdater       = errors.New("editor: batch updater is required")
	ErrInvalidState     = errors.New("editor: invalid compiled state")
	ErrUnknownPath      = errors.New("editor: no editable element for path")
	ErrUnsupportedEvent = errors.New("editor: unsupported event")
	ErrSnapshotLoad     = errors.New("editor: failed to load compiled snapshot")
)
