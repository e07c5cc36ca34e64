package email

import "cvgen_backend/internal/logger"

// NoopProvider is used when email delivery is disabled in config. It
// logs the send and drops the message.
type NoopProvider struct{}

func (NoopProvider) Send(email *Email) error {
	logger.Info("email delivery disabled, dropping message",
		"to", email.To,
		"subject", email.Subject,
		"attachments", len(email.Attachments),
	)
	return nil
}

func (NoopProvider) Validate() error { return nil }
func (NoopProvider) Close() error    { return nil }
