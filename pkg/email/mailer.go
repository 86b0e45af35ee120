package email

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) (*SendResult, error)
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	To      Recipients `json:"to"`
	Subject string     `json:"subject"`
	HTML    string     `json:"html,omitempty"`
	Text    string     `json:"text,omitempty"`
	Tag     string     `json:"tag,omitempty"`
}

// SendResult is the outcome of a successful send. Raw holds the vendor's
// response as returned by its SDK.
type SendResult struct {
	Provider  string `json:"provider"`
	MessageID string `json:"message_id"`
	Raw       any    `json:"-"`
}

// Recipients is a list of addresses. In JSON it may be written as a single
// string ("a@x.com" or "a@x.com, b@y.com") or as an array.
type Recipients []string

func (r *Recipients) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = splitAddresses(single)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%w: to must be a string or an array of strings", ErrInvalidParams)
	}
	*r = Recipients(list)
	return nil
}

// Addresses returns the non-blank recipients, trimmed.
func (r Recipients) Addresses() []string {
	out := make([]string, 0, len(r))
	for _, a := range r {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

func splitAddresses(s string) Recipients {
	var out Recipients
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the parameters before anything is sent.
func (p SendEmailParams) Validate() error {
	to := p.To.Addresses()
	if len(to) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidParams)
	}
	for _, addr := range to {
		if !emailRegex.MatchString(addr) {
			return fmt.Errorf("%w: invalid recipient %q", ErrInvalidParams, addr)
		}
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	return nil
}
