package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// Coordinator persists dirty edits.
type Coordinator struct {
	state     *State
	controls  *SaveControls
	api       BatchUpdater
	snapshots SnapshotLoader
	refresh   func(ctx context.Context) error
	docLock   sync.Locker
	logger    *slog.Logger

	inFlight atomic.Bool
}

// CoordinatorDeps are the collaborators of a Coordinator. Refresh and
// Snapshots may be nil. DocLock guards the document while controls and the
// page are refreshed; it is not held during the request.
type CoordinatorDeps struct {
	State     *State
	Controls  *SaveControls
	API       BatchUpdater
	Snapshots SnapshotLoader
	Refresh   func(ctx context.Context) error
	DocLock   sync.Locker
	Logger    *slog.Logger
}

// NewCoordinator creates a coordinator.
func NewCoordinator(deps CoordinatorDeps) *Coordinator {
	lock := deps.DocLock
	if lock == nil {
		lock = noopLocker{}
	}
	return &Coordinator{
		state:     deps.State,
		controls:  deps.Controls,
		api:       deps.API,
		snapshots: deps.Snapshots,
		refresh:   deps.Refresh,
		docLock:   lock,
		logger:    logger.OrDiscard(deps.Logger),
	}
}

// InFlight reports whether a save is running.
func (c *Coordinator) InFlight() bool { return c.inFlight.Load() }

// HandleSave submits the dirty set as one batch. It returns nil without
// sending when a save is already in flight or nothing is dirty. A failed
// request leaves the dirty set intact and returns an error wrapping
// ErrSaveFailed.
func (c *Coordinator) HandleSave(ctx context.Context) error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil
	}
	defer func() {
		c.inFlight.Store(false)
		c.withDoc(func() { c.controls.Refresh(c.state.DirtyCount(), false) })
	}()

	updates := c.state.Updates()
	if len(updates) == 0 {
		return nil
	}
	c.withDoc(func() { c.controls.Refresh(len(updates), true) })

	req := BatchRequest{Updates: updates}
	if v := c.state.Version(); v > 0 {
		req.Version = &v
	}

	resp, err := c.api.UpdateContentBatch(ctx, req)
	if err != nil {
		c.withDoc(func() { c.controls.Fail(FailedMessage) })
		c.logger.ErrorContext(ctx, "save content batch",
			logger.Component("editor.coordinator"),
			logger.Count("updates", len(updates)),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	c.merge(ctx, resp)
	c.state.ClearDirty()

	var refreshErr error
	c.withDoc(func() {
		c.controls.ClearFailure()
		if c.refresh != nil {
			refreshErr = c.refresh(ctx)
		}
	})
	if refreshErr != nil {
		c.logger.WarnContext(ctx, "refresh page after save",
			logger.Component("editor.coordinator"),
			logger.Error(refreshErr),
		)
	}

	c.logger.InfoContext(ctx, "content saved",
		logger.Component("editor.coordinator"),
		logger.Count("updates", len(updates)),
		logger.Version(c.state.Version()),
	)
	return nil
}

// merge applies the server's answer to the local state.
func (c *Coordinator) merge(ctx context.Context, resp *BatchResponse) {
	if resp == nil {
		return
	}

	switch {
	case resp.Compiled != nil:
		c.state.Replace(resp.Compiled)
	case resp.CompiledJSONPath != "" && c.snapshots != nil:
		compiled, err := c.snapshots.LoadSnapshot(ctx, resp.CompiledJSONPath)
		if err != nil {
			c.logger.WarnContext(ctx, "load compiled snapshot",
				logger.Component("editor.coordinator"),
				slog.String("compiled_json_path", resp.CompiledJSONPath),
				logger.Error(errors.Join(ErrSnapshotLoad, err)),
			)
			break
		}
		c.state.Replace(compiled)
	}

	if resp.Version != nil {
		c.state.SetVersion(*resp.Version)
	}
}

func (c *Coordinator) withDoc(fn func()) {
	c.docLock.Lock()
	defer c.docLock.Unlock()
	fn()
}

type noopLocker struct{}

func (noopLocker) Lock()   {}
func (noopLocker) Unlock() {}
