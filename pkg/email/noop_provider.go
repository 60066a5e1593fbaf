package email

import (
	"context"
	"support-desk/pkg/logger"
)

// NoopProvider implements the Provider interface but sends nothing.
// Used in local development where no relay is configured.
type NoopProvider struct{}

// NewNoopProvider creates a new no-op email provider
func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

// SendEmail logs and discards the message
func (n *NoopProvider) SendEmail(ctx context.Context, to []string, subject string, body EmailBody) error {
	logger.Debugf("noop email provider: discarding message %q to %v", subject, to)
	return nil
}

// SendTemplateEmail logs and discards the message
func (n *NoopProvider) SendTemplateEmail(ctx context.Context, to []string, templateName string, data interface{}) error {
	logger.Debugf("noop email provider: discarding template %q to %v", templateName, to)
	return nil
}

// ValidateProvider always succeeds
func (n *NoopProvider) ValidateProvider(ctx context.Context) error {
	logger.Info("Email provider disabled - outgoing mail will be discarded")
	return nil
}
