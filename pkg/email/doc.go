// Package email provides a provider-agnostic interface for sending transactional
// emails with interchangeable vendor backends.
//
// # Architecture
//
// Application code depends on the EmailSender interface. Implementations:
//   - PostmarkSender delivers through Postmark's transactional API
//   - SESSender delivers through Amazon SES (API v2)
//   - DevSender writes messages to a local directory for development
//
// New picks one from Config.Provider, so switching vendors is a
// configuration change:
//
//	cfg := email.Config{
//	    Provider:    "ses",
//	    SenderEmail: "noreply@example.com",
//	    SenderName:  "Example",
//	    AWSRegion:   "eu-west-1",
//	}
//	sender, err := email.New(ctx, cfg)
//	if err != nil {
//	    // missing sender identity or vendor credentials
//	}
//
//	res, err := sender.SendEmail(ctx, email.SendEmailParams{
//	    To:      email.Recipients{"user@example.com"},
//	    Subject: "Welcome!",
//	    HTML:    htmlContent,
//	})
//
// # Validation
//
// The sender identity (name and address) is checked when a sender is built
// and again on every send. Parameters are validated before any vendor call:
// at least one recipient and a subject are required. Recipients decode from
// either a JSON string or a JSON array.
//
// # Error Handling
//
//   - ErrInvalidConfig: sender identity or credentials missing
//   - ErrInvalidParams: message parameters invalid
//   - ErrFailedToSendEmail: delivery failed
//
// Vendor failures are returned as *VendorError, which keeps the vendor's own
// error reachable through errors.As and matches ErrFailedToSendEmail:
//
//	var ve *email.VendorError
//	if errors.As(err, &ve) {
//	    log.Error("email rejected", "provider", ve.Provider, "code", ve.Code)
//	}
package email
