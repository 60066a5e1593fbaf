package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func complaintData() ComplaintTemplateData {
	return ComplaintTemplateData{
		ReferenceNumber: "REF-12345678",
		Username:        "player_one",
		Email:           "player@example.com",
		GameID:          "abc-123",
		Platform:        "PC",
		IssueType:       "Technical",
		Description:     "The game crashes on startup.",
		DateOfIssue:     "2024-01-15",
		PhoneNumber:     "+1234567890",
	}
}

func TestRenderComplaintReportTemplate(t *testing.T) {
	body, err := renderTemplate(TemplateComplaintReport, complaintData())
	require.NoError(t, err)

	for _, want := range []string{"REF-12345678", "player_one", "player@example.com", "abc-123", "Technical", "The game crashes on startup."} {
		assert.Contains(t, body.Text, want)
		assert.Contains(t, body.HTML, want)
	}
}

func TestRenderComplaintReportOmitsEmptyGameID(t *testing.T) {
	data := complaintData()
	data.GameID = ""

	body, err := renderTemplate(TemplateComplaintReport, data)
	require.NoError(t, err)

	assert.NotContains(t, body.Text, "Game ID:")
	assert.NotContains(t, body.HTML, "Game ID")
}

func TestRenderTemplateRejectsWrongDataType(t *testing.T) {
	_, err := renderTemplate(TemplateComplaintReport, struct{}{})
	assert.Error(t, err)
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := renderTemplate("no_such_template", nil)
	assert.Error(t, err)
}

func TestGetTemplateSubject(t *testing.T) {
	subject := getTemplateSubject(TemplateComplaintReport, complaintData())
	assert.Equal(t, "New Complaint [REF-12345678] - Technical", subject)

	// wrong data type falls back to a generic subject
	subject = getTemplateSubject(TemplateComplaintReport, nil)
	assert.Equal(t, "New Complaint", subject)
}
