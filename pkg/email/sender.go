package email

import (
	"context"
	"fmt"
	"strings"
)

// New creates the sender selected by cfg.Provider.
func New(ctx context.Context, cfg Config, opts ...Option) (EmailSender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderPostmark:
		return NewPostmarkSender(cfg, opts...)
	case ProviderSES:
		return NewSESSender(ctx, cfg, opts...)
	case ProviderDev, "":
		return NewDevSender(cfg, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// MustNew is New that panics on error.
func MustNew(ctx context.Context, cfg Config, opts ...Option) EmailSender {
	s, err := New(ctx, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
