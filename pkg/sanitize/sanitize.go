// Package sanitize strips markup from free-text form fields before they are
// embedded into the outgoing email. It runs after validation, on the
// validated values.
package sanitize

import (
	"regexp"
	"strings"

	"support-desk/pkg/model"
)

// tagRegex matches HTML-tag-like substrings, including an unterminated
// trailing "<..." sequence.
var tagRegex = regexp.MustCompile(`<[^>]*>?`)

// Strip removes HTML-tag-like substrings and trims surrounding whitespace.
// Stripping is idempotent: the output contains no '<' at all.
func Strip(value string) string {
	return strings.TrimSpace(tagRegex.ReplaceAllString(value, ""))
}

// Complaint sanitizes every string field of a validated submission in place.
func Complaint(req *model.ComplaintRequest) {
	req.Username = Strip(req.Username)
	req.Email = Strip(req.Email)
	req.GameID = Strip(req.GameID)
	req.Platform = Strip(req.Platform)
	req.IssueType = Strip(req.IssueType)
	req.Description = Strip(req.Description)
	req.DateOfIssue = Strip(req.DateOfIssue)
	req.PhoneNumber = Strip(req.PhoneNumber)
}
