package editor

import (
	"fmt"

	"github.com/dmitrymomot/sitekit/pkg/dom"
)

// Status texts shown by SaveControls.
const (
	StatusSaving  = "Saving…"
	StatusSaved   = "All changes saved"
	FailedMessage = "Save failed. Please try again."
)

// SaveControls drives the save button and the status line. Either element
// may be missing from the page.
type SaveControls struct {
	doc      *dom.Document
	buttonID string
	statusID string
	failure  string
}

// NewSaveControls binds the controls to the elements with the given ids.
func NewSaveControls(doc *dom.Document, buttonID, statusID string) *SaveControls {
	return &SaveControls{doc: doc, buttonID: buttonID, statusID: statusID}
}

// Refresh updates the button and status for the given dirty count. The
// button is disabled while saving or when there is nothing to save.
func (c *SaveControls) Refresh(dirty int, saving bool) {
	if btn := c.doc.ByID(c.buttonID); btn != nil {
		if saving || dirty == 0 {
			btn.SetAttr("disabled", "")
		} else {
			btn.RemoveAttr("disabled")
		}
	}
	if status := c.doc.ByID(c.statusID); status != nil {
		status.SetText(c.statusText(dirty, saving))
	}
}

// Fail makes msg the status until ClearFailure is called.
func (c *SaveControls) Fail(msg string) { c.failure = msg }

// ClearFailure drops the failure message.
func (c *SaveControls) ClearFailure() { c.failure = "" }

// Failure returns the current failure message.
func (c *SaveControls) Failure() string { return c.failure }

// Status returns the current status text.
func (c *SaveControls) Status() string {
	if status := c.doc.ByID(c.statusID); status != nil {
		return status.Text()
	}
	return ""
}

// ButtonID returns the id of the save button.
func (c *SaveControls) ButtonID() string { return c.buttonID }

// StatusID returns the id of the status element.
func (c *SaveControls) StatusID() string { return c.statusID }

func (c *SaveControls) statusText(dirty int, saving bool) string {
	switch {
	case saving:
		return StatusSaving
	case c.failure != "":
		return c.failure
	case dirty == 1:
		return "1 unsaved change"
	case dirty > 1:
		return fmt.Sprintf("%d unsaved changes", dirty)
	default:
		return StatusSaved
	}
}
