package email

import (
	"context"
)

// Provider defines the interface for the outbound mail relay
type Provider interface {
	// SendEmail sends an email with the specified content
	SendEmail(ctx context.Context, to []string, subject string, body EmailBody) error

	// SendTemplateEmail sends an email using a template
	SendTemplateEmail(ctx context.Context, to []string, templateName string, data interface{}) error

	// ValidateProvider validates the provider configuration
	ValidateProvider(ctx context.Context) error
}

// EmailBody represents the email content
type EmailBody struct {
	HTML string // HTML content
	Text string // Plain text content
}

// ComplaintTemplateData carries one sanitized submission plus its reference
// number into the complaint-report template.
type ComplaintTemplateData struct {
	ReferenceNumber string
	Username        string
	Email           string
	GameID          string
	Platform        string
	IssueType       string
	Description     string
	DateOfIssue     string
	PhoneNumber     string
}
