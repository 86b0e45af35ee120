// Package editor implements inline content editing on a rendered site page.
//
// The rendered page is held as a dom.Document. Elements marked with
// data-editable and data-path are editable regions:
//
//	<h1 data-editable data-path="hero.title">Hello</h1>
//	<div data-editable data-path="bio.body" data-type="html"><p>...</p></div>
//
// # Components
//
//   - State holds the compiled site content, the ordered set of pending
//     (dirty) edits and the server-assigned version.
//   - Overlay attaches input and blur listeners to editable regions. Each
//     event copies the element content into State and refreshes the save
//     controls.
//   - SaveControls drives the save button and status line.
//   - Coordinator submits the dirty set as one batch through a BatchUpdater,
//     merges the server's compiled content and version back, and asks the
//     Refresher to re-render the page.
//   - Refresher maps page identifiers to refresh routines, with a default
//     that re-applies data bindings and re-attaches listeners to the content
//     container.
//   - Editor wires the above together and serialises access to the document.
//
// # Usage
//
//	doc, _ := dom.ParseString(page)
//	ed, err := editor.New(doc, apiClient,
//		editor.WithLogger(log),
//		editor.WithPage("home"),
//	)
//	ed.AttachEditableListeners(nil)
//
//	// browser reported an edit
//	ed.Input("hero.title", "text", "Hi", "input")
//
//	// user pressed save
//	if err := ed.HandleSave(ctx); err != nil {
//		// dirty edits are kept and the status shows the failure message
//	}
//
// # Save semantics
//
// Only one save runs at a time; a save requested while another is in flight
// returns immediately without sending anything. A successful save clears the
// whole dirty set, including edits made while the request was in flight. A
// failed save leaves the dirty set untouched and is never retried.
//
// Paths with an array index (items[0].title) are recorded as dirty and sent
// to the server, but the local compiled state is not updated for them.
package editor
