package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/email"
)

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.DevOutputDir = filepath.Join(t.TempDir(), "out")

	s, err := email.NewDevSender(cfg)
	require.NoError(t, err)

	res, err := s.SendEmail(context.Background(), email.SendEmailParams{
		To:      email.Recipients{"a@example.com"},
		Subject: "Hello World!",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "dev", res.Provider)
	assert.Contains(t, res.MessageID, "hello_world")

	html, err := os.ReadFile(filepath.Join(cfg.DevOutputDir, res.MessageID+".html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hi</p>", string(html))

	text, err := os.ReadFile(filepath.Join(cfg.DevOutputDir, res.MessageID+".txt"))
	require.NoError(t, err)
	assert.Equal(t, "Hi", string(text))

	raw, err := os.ReadFile(filepath.Join(cfg.DevOutputDir, res.MessageID+".json"))
	require.NoError(t, err)
	var meta map[string]any
	require.NoError(t, json.Unmarshal(raw, &meta))
	assert.Equal(t, []any{"a@example.com"}, meta["to"])
	assert.Equal(t, "Hello World!", meta["subject"])
}

func TestDevSender_Validation(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.DevOutputDir = t.TempDir()
	s, err := email.NewDevSender(cfg)
	require.NoError(t, err)

	_, err = s.SendEmail(context.Background(), email.SendEmailParams{Subject: "x"})
	assert.ErrorIs(t, err, email.ErrInvalidParams)

	entries, err := os.ReadDir(cfg.DevOutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNew_SelectsProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cfg := validConfig()
	cfg.Provider = "postmark"
	s, err := email.New(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &email.PostmarkSender{}, s)

	cfg.Provider = "SES"
	s, err = email.New(ctx, cfg, email.WithSESAPI(&sesMock{}))
	require.NoError(t, err)
	assert.IsType(t, &email.SESSender{}, s)

	cfg.Provider = ""
	s, err = email.New(ctx, cfg)
	require.NoError(t, err)
	assert.IsType(t, &email.DevSender{}, s)

	cfg.Provider = "carrier-pigeon"
	_, err = email.New(ctx, cfg)
	assert.ErrorIs(t, err, email.ErrUnknownProvider)

	cfg.Provider = "postmark"
	cfg.SenderName = ""
	_, err = email.New(ctx, cfg)
	assert.ErrorIs(t, err, email.ErrInvalidConfig)

	assert.Panics(t, func() { email.MustNew(ctx, cfg) })
}
