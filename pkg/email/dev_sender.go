package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

// DevSender implements EmailSender for local development. It writes each
// message as HTML, text and JSON metadata files instead of sending it.
type DevSender struct {
	dir    string
	config Config
	logger *slog.Logger
	now    func() time.Time
}

// NewDevSender creates a development sender writing to cfg.DevOutputDir.
// The directory is created on first send.
func NewDevSender(cfg Config, opts ...Option) (*DevSender, error) {
	if _, err := cfg.From(); err != nil {
		return nil, err
	}
	if cfg.DevOutputDir == "" {
		return nil, fmt.Errorf("%w: DevOutputDir is required", ErrInvalidConfig)
	}
	o := buildOptions(opts)
	return &DevSender{dir: cfg.DevOutputDir, config: cfg, logger: o.logger, now: time.Now}, nil
}

type emailMetadata struct {
	Timestamp string   `json:"timestamp"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
	Tag       string   `json:"tag,omitempty"`
}

// SendEmail writes the message files; MessageID is their base name.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) (*SendResult, error) {
	from, err := d.config.From()
	if err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create directory: %w", ErrFailedToSendEmail, err)
	}

	now := d.now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000"), sanitizeFilename(identifier))

	if params.HTML != "" {
		if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(params.HTML), 0o644); err != nil {
			return nil, fmt.Errorf("%w: write html: %w", ErrFailedToSendEmail, err)
		}
	}
	if params.Text != "" {
		if err := os.WriteFile(filepath.Join(d.dir, base+".txt"), []byte(params.Text), 0o644); err != nil {
			return nil, fmt.Errorf("%w: write text: %w", ErrFailedToSendEmail, err)
		}
	}

	meta, err := json.MarshalIndent(emailMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      from,
		To:        params.To.Addresses(),
		Subject:   params.Subject,
		Tag:       params.Tag,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: marshal metadata: %w", ErrFailedToSendEmail, err)
	}
	metaPath := filepath.Join(d.dir, base+".json")
	if err := os.WriteFile(metaPath, meta, 0o644); err != nil {
		return nil, fmt.Errorf("%w: write metadata: %w", ErrFailedToSendEmail, err)
	}

	d.logger.InfoContext(ctx, "email written", logger.Provider(ProviderDev), slog.String("file", metaPath))
	return &SendResult{Provider: ProviderDev, MessageID: base, Raw: metaPath}, nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename turns s into a lower-case file name fragment of at most
// 100 characters.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")
	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
