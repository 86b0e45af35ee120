package email_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/email"
)

type postmarkMock struct {
	mock.Mock
}

func (m *postmarkMock) SendEmail(ctx context.Context, e postmark.Email) (postmark.EmailResponse, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(postmark.EmailResponse), args.Error(1)
}

func validConfig() email.Config {
	return email.Config{
		SenderEmail:          "noreply@example.com",
		SenderName:           "Site",
		ReplyToEmail:         "support@example.com",
		PostmarkServerToken:  "server",
		PostmarkAccountToken: "account",
		AWSRegion:            "eu-west-1",
		DevOutputDir:         "unused",
	}
}

func TestNewPostmarkSender_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := map[string]func(*email.Config){
		"no server token":  func(c *email.Config) { c.PostmarkServerToken = "" },
		"no account token": func(c *email.Config) { c.PostmarkAccountToken = "" },
		"no sender":        func(c *email.Config) { c.SenderEmail = "" },
		"no sender name":   func(c *email.Config) { c.SenderName = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			mutate(&cfg)
			s, err := email.NewPostmarkSender(cfg)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Nil(t, s)
		})
	}
}

func TestPostmarkSender_SendEmail(t *testing.T) {
	t.Parallel()

	api := &postmarkMock{}
	api.On("SendEmail", mock.Anything, postmark.Email{
		From:       `"Site" <noreply@example.com>`,
		ReplyTo:    "support@example.com",
		To:         "a@example.com,b@example.com",
		Subject:    "Hello",
		Tag:        "welcome",
		HTMLBody:   "<p>Hi</p>",
		TextBody:   "Hi",
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	}).Return(postmark.EmailResponse{MessageID: "pm-1"}, nil).Once()

	s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
	require.NoError(t, err)

	res, err := s.SendEmail(context.Background(), email.SendEmailParams{
		To:      email.Recipients{"a@example.com", " b@example.com "},
		Subject: "Hello",
		HTML:    "<p>Hi</p>",
		Text:    "Hi",
		Tag:     "welcome",
	})
	require.NoError(t, err)
	assert.Equal(t, "postmark", res.Provider)
	assert.Equal(t, "pm-1", res.MessageID)
	assert.IsType(t, postmark.EmailResponse{}, res.Raw)
	api.AssertExpectations(t)
}

func TestPostmarkSender_Errors(t *testing.T) {
	t.Parallel()

	params := email.SendEmailParams{To: email.Recipients{"a@example.com"}, Subject: "Hello"}

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()
		api := &postmarkMock{}
		api.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{ErrorCode: 406, Message: "Inactive recipient"}, nil)

		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		_, err = s.SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		var ve *email.VendorError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "406", ve.Code)
		assert.Equal(t, "Inactive recipient", ve.Message)
	})

	t.Run("rejected with api error", func(t *testing.T) {
		t.Parallel()
		rejection := postmark.APIError{ErrorCode: 406, Message: "Inactive recipient"}
		api := &postmarkMock{}
		api.On("SendEmail", mock.Anything, mock.Anything).Return(postmark.EmailResponse{}, rejection)

		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		_, err = s.SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		var ve *email.VendorError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "406", ve.Code)
		assert.Equal(t, "Inactive recipient", ve.Message)

		var apiErr postmark.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, rejection, apiErr)
	})

	t.Run("rejected in a 200 response", func(t *testing.T) {
		t.Parallel()
		resp := postmark.EmailResponse{ErrorCode: 300, Message: "Invalid email request"}
		api := &postmarkMock{}
		api.On("SendEmail", mock.Anything, mock.Anything).
			Return(resp, errors.New("300 Invalid email request"))

		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		_, err = s.SendEmail(context.Background(), params)
		var ve *email.VendorError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "300", ve.Code)
		assert.Equal(t, "Invalid email request", ve.Message)
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("connection reset")
		api := &postmarkMock{}
		api.On("SendEmail", mock.Anything, mock.Anything).Return(postmark.EmailResponse{}, cause)

		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		_, err = s.SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("missing to never reaches the api", func(t *testing.T) {
		t.Parallel()
		api := &postmarkMock{}
		s, err := email.NewPostmarkSender(validConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		_, err = s.SendEmail(context.Background(), email.SendEmailParams{Subject: "Hello"})
		assert.ErrorIs(t, err, email.ErrInvalidParams)
		api.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("zero sender fails before the api", func(t *testing.T) {
		t.Parallel()
		_, err := (&email.PostmarkSender{}).SendEmail(context.Background(), params)
		assert.ErrorIs(t, err, email.ErrInvalidConfig)
	})
}
