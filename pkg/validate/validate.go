// Package validate holds the per-field complaint form checks. Every field is
// checked even when an earlier one fails, so the client can highlight all
// invalid inputs at once.
package validate

import (
	"regexp"
	"strings"
	"time"

	"support-desk/pkg/model"
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	gameIDRegex   = regexp.MustCompile(`^[A-Za-z0-9\-_]+$`)
	phoneRegex    = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

const dateLayout = "2006-01-02"

// Complaint validates every field of the submission and returns a map of
// field name to human-readable reason. An empty map means the submission
// passed validation.
func Complaint(req *model.ComplaintRequest) map[string]string {
	errs := make(map[string]string)

	if msg := Username(req.Username); msg != "" {
		errs["username"] = msg
	}
	if msg := Email(req.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := GameID(req.GameID); msg != "" {
		errs["gameId"] = msg
	}
	if msg := Platform(req.Platform); msg != "" {
		errs["platform"] = msg
	}
	if msg := IssueType(req.IssueType); msg != "" {
		errs["issueType"] = msg
	}
	if msg := Description(req.Description); msg != "" {
		errs["description"] = msg
	}
	if msg := DateOfIssue(req.DateOfIssue); msg != "" {
		errs["dateOfIssue"] = msg
	}
	if msg := PhoneNumber(req.PhoneNumber); msg != "" {
		errs["phoneNumber"] = msg
	}

	return errs
}

// Username checks trimmed length 3-50 with letters, digits and underscores only.
func Username(value string) string {
	value = strings.TrimSpace(value)
	if len(value) < 3 || len(value) > 50 {
		return "Username must be between 3 and 50 characters"
	}
	if !usernameRegex.MatchString(value) {
		return "Username may only contain letters, numbers and underscores"
	}
	return ""
}

// Email checks a simple local@domain.tld shape; full RFC compliance is not attempted.
func Email(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 100 {
		return "A valid email address of at most 100 characters is required"
	}
	if !emailRegex.MatchString(value) {
		return "Email address is not valid"
	}
	return ""
}

// GameID is optional; when present it must be at most 50 characters of
// letters, digits, hyphens and underscores.
func GameID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) > 50 {
		return "Game ID must be at most 50 characters"
	}
	if !gameIDRegex.MatchString(value) {
		return "Game ID may only contain letters, numbers, hyphens and underscores"
	}
	return ""
}

// Platform accepts the single supported platform tag.
func Platform(value string) string {
	if value != model.PlatformPC {
		return "Platform must be " + model.PlatformPC
	}
	return ""
}

// IssueType must be a member of the closed category set.
func IssueType(value string) string {
	if !model.IsValidIssueType(value) {
		return "Issue type must be one of: " + strings.Join(model.IssueTypes, ", ")
	}
	return ""
}

// Description checks trimmed length 1-2000.
func Description(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Description is required"
	}
	if len(value) > 2000 {
		return "Description must be at most 2000 characters"
	}
	return ""
}

// DateOfIssue must parse as a calendar date and must not be in the future.
func DateOfIssue(value string) string {
	value = strings.TrimSpace(value)
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return "Date of issue must be a valid date in YYYY-MM-DD format"
	}
	if parsed.After(time.Now()) {
		return "Date of issue cannot be in the future"
	}
	return ""
}

// PhoneNumber accepts an optional leading + followed by 10-15 digits.
func PhoneNumber(value string) string {
	value = strings.TrimSpace(value)
	if !phoneRegex.MatchString(value) {
		return "Phone number must be 10 to 15 digits with an optional leading +"
	}
	return ""
}
