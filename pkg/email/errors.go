package email

import (
	"errors"
	"fmt"
)

var (
	ErrFailedToSendEmail = errors.New("email: failed to send email")
	ErrInvalidConfig     = errors.New("email: invalid config")
	ErrInvalidParams     = errors.New("email: invalid params")
	ErrUnknownProvider   = errors.New("email: unknown provider")
)

// VendorError is a delivery failure reported by an email vendor.
type VendorError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *VendorError) Error() string {
	msg := fmt.Sprintf("email: %s: send failed", e.Provider)
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the vendor's original error.
func (e *VendorError) Unwrap() error { return e.Err }

// Is makes every VendorError match ErrFailedToSendEmail.
func (e *VendorError) Is(target error) bool {
	return target == ErrFailedToSendEmail
}
