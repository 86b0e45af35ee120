// Package editor serves editing sessions for rendered site pages.
//
// Routes (relative to the mount point, BasePath in Config):
//
//	GET  /{siteID}/{page}         editable page
//	POST /{siteID}/{page}/input   datastar signals {path, type, value, event}
//	POST /{siteID}/{page}/save    persist pending edits
//
// Every request must carry the user's site API token, either as a bearer
// Authorization header or in the cookie named by Config.TokenCookie.
// Anonymous requests get 401. The token travels in the request context to
// the BatchUpdater, so saves are made with the editing user's credential.
//
// The rendered page is read from storage at "<siteID>/<page>.html". Each
// (token, site, page) triple gets a workspace holding its parsed document
// and editor.Editor. Workspaces live in an LRU so a session keeps its state
// across requests; a workspace with unsaved edits is never evicted. Edits
// and saves answer with datastar patches of the save controls and, after a
// save, of the content container.
package editor
