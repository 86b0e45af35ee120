package email

import (
	"log/slog"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

type options struct {
	postmark PostmarkAPI
	ses      SESAPI
	logger   *slog.Logger
}

// Option configures a sender.
type Option func(*options)

// WithPostmarkAPI replaces the Postmark SDK client.
func WithPostmarkAPI(api PostmarkAPI) Option {
	return func(o *options) { o.postmark = api }
}

// WithSESAPI replaces the SES SDK client.
func WithSESAPI(api SESAPI) Option {
	return func(o *options) { o.ses = api }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
