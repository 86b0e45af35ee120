package dom

import "errors"

var (
	// ErrParse is returned when the HTML input cannot be parsed.
	ErrParse = errors.New("dom: failed to parse html")

	// ErrNilElement is returned when an operation receives a nil element.
	ErrNilElement = errors.New("dom: nil element")
)
