package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// PostmarkAPI is the part of the Postmark SDK client the sender uses.
type PostmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkSender sends email through Postmark.
type PostmarkSender struct {
	api    PostmarkAPI
	config Config
	logger *slog.Logger
}

// NewPostmarkSender creates a Postmark-backed email sender. Both tokens are
// required unless a client is injected with WithPostmarkAPI.
func NewPostmarkSender(cfg Config, opts ...Option) (*PostmarkSender, error) {
	if _, err := cfg.From(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	api := o.postmark
	if api == nil {
		if cfg.PostmarkServerToken == "" {
			return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
		}
		if cfg.PostmarkAccountToken == "" {
			return nil, fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
		}
		api = postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	}

	return &PostmarkSender{api: api, config: cfg, logger: o.logger}, nil
}

// SendEmail implements EmailSender. Recipients are sent as one
// comma-separated To header; HTML and text bodies are passed as given.
func (s *PostmarkSender) SendEmail(ctx context.Context, params SendEmailParams) (*SendResult, error) {
	from, err := s.config.From()
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.api.SendEmail(ctx, postmark.Email{
		From:       from,
		ReplyTo:    s.config.ReplyToEmail,
		To:         strings.Join(params.To.Addresses(), ","),
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.HTML,
		TextBody:   params.Text,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		verr := &VendorError{Provider: ProviderPostmark, Err: err}
		// the SDK reports rejections as an error: APIError for non-2xx
		// answers, a plain error with ErrorCode set in resp otherwise
		var apiErr postmark.APIError
		switch {
		case errors.As(err, &apiErr):
			verr.Code, verr.Message = fmt.Sprint(apiErr.ErrorCode), apiErr.Message
		case resp.ErrorCode != 0:
			verr.Code, verr.Message = fmt.Sprint(resp.ErrorCode), resp.Message
		}
		s.logger.ErrorContext(ctx, "postmark send", logger.Provider(ProviderPostmark), logger.Error(verr))
		return nil, verr
	}
	if resp.ErrorCode != 0 {
		verr := &VendorError{
			Provider: ProviderPostmark,
			Code:     fmt.Sprint(resp.ErrorCode),
			Message:  resp.Message,
		}
		s.logger.ErrorContext(ctx, "postmark rejected email", logger.Provider(ProviderPostmark), logger.Error(verr))
		return nil, verr
	}

	s.logger.DebugContext(ctx, "email sent",
		logger.Provider(ProviderPostmark),
		slog.String("message_id", resp.MessageID),
	)
	return &SendResult{Provider: ProviderPostmark, MessageID: resp.MessageID, Raw: resp}, nil
}
