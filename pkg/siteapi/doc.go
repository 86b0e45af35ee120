// Package siteapi is the client for the two website API endpoints sitekit
// depends on:
//
//	POST /api/website-state/update-content-batch?compile=true
//	GET  /api/public/site?slug=<slug>
//
// UpdateContentBatch submits the editor's pending edits in one request and
// returns the server's compiled content and version. LookupSite maps a
// public slug to the site (artist) identifier.
//
// Requests are authenticated with a bearer token from a TokenSource. The
// token is read on every request; FileToken re-reads its file so a token
// refreshed by another process is picked up without a restart.
//
// The client performs exactly one attempt per call. Non-2xx responses come
// back as *StatusError (errors.Is ErrUnexpectedStatus), transport failures
// wrap ErrRequestFailed, and LookupSite reports unknown slugs as
// ErrSiteNotFound.
package siteapi
