package bootstrap

import "errors"

var (
	ErrNoSlug       = errors.New("bootstrap: no site slug in url")
	ErrNoLookup     = errors.New("bootstrap: site lookup not configured")
	ErrSiteNotFound = errors.New("bootstrap: site not found")
	ErrBootPanic    = errors.New("bootstrap: runtime panicked")
)

// Fixed messages shown to visitors.
const (
	MessageMissingSlug  = "Missing site slug."
	MessageSiteNotFound = "Site not found."
	MessageLoadFailed   = "Failed to load site."
)
