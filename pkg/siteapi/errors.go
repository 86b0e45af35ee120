package siteapi

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBaseURL   = errors.New("siteapi: invalid base url")
	ErrRequestFailed    = errors.New("siteapi: request failed")
	ErrUnexpectedStatus = errors.New("siteapi: unexpected response status")
	ErrInvalidResponse  = errors.New("siteapi: invalid response body")
	ErrSiteNotFound     = errors.New("siteapi: site not found")
	ErrEmptySlug        = errors.New("siteapi: slug is required")
	ErrToken            = errors.New("siteapi: failed to read auth token")
	ErrNoToken          = errors.New("siteapi: no auth token in context")
)

// StatusError carries a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("siteapi: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("siteapi: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Is makes every StatusError match ErrUnexpectedStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
