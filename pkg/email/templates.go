package email

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
)

// template names
const (
	TemplateComplaintReport = "complaint_report"
)

// renderTemplate renders an email template with the given data
func renderTemplate(templateName string, data interface{}) (EmailBody, error) {
	switch templateName {
	case TemplateComplaintReport:
		return renderComplaintReportTemplate(data)
	default:
		return EmailBody{}, fmt.Errorf("unknown template: %s", templateName)
	}
}

// getTemplateSubject returns the subject for a given template
func getTemplateSubject(templateName string, data interface{}) string {
	switch templateName {
	case TemplateComplaintReport:
		reportData, ok := data.(ComplaintTemplateData)
		if ok {
			return fmt.Sprintf("New Complaint [%s] - %s", reportData.ReferenceNumber, reportData.IssueType)
		}
		return "New Complaint"
	default:
		return "Support Desk Notification"
	}
}

// renderComplaintReportTemplate renders the complaint report email template
func renderComplaintReportTemplate(data interface{}) (EmailBody, error) {
	reportData, ok := data.(ComplaintTemplateData)
	if !ok {
		return EmailBody{}, fmt.Errorf("invalid template data type for complaint report")
	}

	htmlTmpl, err := template.New("html").Parse(complaintReportTemplateHTML)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var htmlBuf bytes.Buffer
	err = htmlTmpl.Execute(&htmlBuf, reportData)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	textTmpl, err := texttemplate.New("text").Parse(complaintReportTextTemplate)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to parse text template: %w", err)
	}

	var textBuf bytes.Buffer
	err = textTmpl.Execute(&textBuf, reportData)
	if err != nil {
		return EmailBody{}, fmt.Errorf("failed to execute text template: %w", err)
	}

	return EmailBody{
		HTML: htmlBuf.String(),
		Text: textBuf.String(),
	}, nil
}
