package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// SESAPI is the part of the SES v2 client the sender uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESSender sends email through Amazon SES.
type SESSender struct {
	api    SESAPI
	config Config
	logger *slog.Logger
}

// NewSESSender creates an SES-backed email sender. Static credentials are
// used when both keys are set, otherwise the default AWS credential chain.
func NewSESSender(ctx context.Context, cfg Config, opts ...Option) (*SESSender, error) {
	if _, err := cfg.From(); err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	api := o.ses
	if api == nil {
		if cfg.AWSRegion == "" {
			return nil, fmt.Errorf("%w: AWSRegion is required", ErrInvalidConfig)
		}
		loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.AWSRegion)}
		if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
			))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("%w: load aws config: %w", ErrInvalidConfig, err)
		}
		api = sesv2.NewFromConfig(awsCfg, func(o *sesv2.Options) {
			if cfg.SESEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.SESEndpoint)
			}
		})
	}

	return &SESSender{api: api, config: cfg, logger: o.logger}, nil
}

// SendEmail implements EmailSender. SES needs at least one body part, so an
// empty text part is sent when neither HTML nor text is given.
func (s *SESSender) SendEmail(ctx context.Context, params SendEmailParams) (*SendResult, error) {
	from, err := s.config.From()
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &types.Destination{ToAddresses: params.To.Addresses()},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: utf8Content(params.Subject),
				Body:    sesBody(params),
			},
		},
	}
	if s.config.ReplyToEmail != "" {
		input.ReplyToAddresses = []string{s.config.ReplyToEmail}
	}
	if s.config.SESConfigSet != "" {
		input.ConfigurationSetName = aws.String(s.config.SESConfigSet)
	}
	if params.Tag != "" {
		input.EmailTags = []types.MessageTag{{Name: aws.String("tag"), Value: aws.String(params.Tag)}}
	}

	out, err := s.api.SendEmail(ctx, input)
	if err != nil {
		verr := &VendorError{Provider: ProviderSES, Err: err}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			verr.Code = apiErr.ErrorCode()
			verr.Message = apiErr.ErrorMessage()
		}
		s.logger.ErrorContext(ctx, "ses send", logger.Provider(ProviderSES), logger.Error(verr))
		return nil, verr
	}

	id := aws.ToString(out.MessageId)
	s.logger.DebugContext(ctx, "email sent", logger.Provider(ProviderSES), slog.String("message_id", id))
	return &SendResult{Provider: ProviderSES, MessageID: id, Raw: out}, nil
}

func sesBody(p SendEmailParams) *types.Body {
	body := &types.Body{}
	if p.HTML != "" {
		body.Html = utf8Content(p.HTML)
	}
	if p.Text != "" || p.HTML == "" {
		body.Text = utf8Content(p.Text)
	}
	return body
}

func utf8Content(s string) *types.Content {
	return &types.Content{Data: aws.String(s), Charset: aws.String("UTF-8")}
}
