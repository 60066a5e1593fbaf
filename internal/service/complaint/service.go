// Package complaint orchestrates one form submission: field validation,
// sanitization, reference-number generation and the relay to the support
// mailbox. Nothing is persisted; a submission either fully succeeds or
// fails without side effects.
package complaint

import (
	"context"
	"fmt"
	"time"

	"support-desk/pkg/email"
	"support-desk/pkg/model"
	"support-desk/pkg/sanitize"
	"support-desk/pkg/validate"
)

const referencePrefix = "REF"

// Service relays validated complaints to the fixed support mailbox.
type Service struct {
	emailService email.Provider
	supportInbox string

	now func() time.Time
}

// NewService creates a complaint service sending reports to supportInbox.
func NewService(emailService email.Provider, supportInbox string) *Service {
	return &Service{
		emailService: emailService,
		supportInbox: supportInbox,
		now:          time.Now,
	}
}

// Submit validates, sanitizes and relays one submission. On validation
// failure it returns the full field-to-reason map and no reference number.
// On relay failure it returns an opaque wrapped error.
func (s *Service) Submit(ctx context.Context, req *model.ComplaintRequest) (string, map[string]string, error) {
	fieldErrs := validate.Complaint(req)
	if len(fieldErrs) > 0 {
		return "", fieldErrs, nil
	}

	sanitize.Complaint(req)

	ref := s.referenceNumber()
	templateData := email.ComplaintTemplateData{
		ReferenceNumber: ref,
		Username:        req.Username,
		Email:           req.Email,
		GameID:          req.GameID,
		Platform:        req.Platform,
		IssueType:       req.IssueType,
		Description:     req.Description,
		DateOfIssue:     req.DateOfIssue,
		PhoneNumber:     req.PhoneNumber,
	}

	err := s.emailService.SendTemplateEmail(ctx, []string{s.supportInbox}, email.TemplateComplaintReport, templateData)
	if err != nil {
		return "", nil, fmt.Errorf("failed to relay complaint: %w", err)
	}

	return ref, nil, nil
}

// referenceNumber derives the correspondence identifier from the last 8
// digits of the current epoch milliseconds. Two submissions inside the same
// truncation window collide; accepted as a known weakness.
func (s *Service) referenceNumber() string {
	return fmt.Sprintf("%s-%08d", referencePrefix, s.now().UnixMilli()%100000000)
}
