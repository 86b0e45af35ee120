package email

import (
	"fmt"
	"net/mail"
	"strings"
)

// Providers selectable through Config.Provider.
const (
	ProviderPostmark = "postmark"
	ProviderSES      = "ses"
	ProviderDev      = "dev"
)

// Config holds email service configuration. The sender identity is always
// required; vendor credentials only for the selected provider.
type Config struct {
	Provider     string `env:"EMAIL_PROVIDER" envDefault:"dev"`
	SenderEmail  string `env:"SENDER_EMAIL"`
	SenderName   string `env:"SENDER_NAME"`
	ReplyToEmail string `env:"EMAIL_REPLY_TO"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	AWSRegion          string `env:"AWS_REGION"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	SESEndpoint        string `env:"SES_ENDPOINT"`
	SESConfigSet       string `env:"SES_CONFIGURATION_SET"`

	DevOutputDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// From returns the formatted sender ("Name <address>") after checking the
// identity is complete.
func (c Config) From() (string, error) {
	name := strings.TrimSpace(c.SenderName)
	addr := strings.TrimSpace(c.SenderEmail)
	if addr == "" {
		return "", fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !emailRegex.MatchString(addr) {
		return "", fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	if name == "" {
		return "", fmt.Errorf("%w: SenderName is required", ErrInvalidConfig)
	}
	if c.ReplyToEmail != "" && !emailRegex.MatchString(c.ReplyToEmail) {
		return "", fmt.Errorf("%w: ReplyToEmail must be a valid email address", ErrInvalidConfig)
	}
	return (&mail.Address{Name: name, Address: addr}).String(), nil
}
