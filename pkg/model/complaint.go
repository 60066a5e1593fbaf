package model

// PlatformPC is the only platform this intake form currently accepts.
const PlatformPC = "PC"

// issue type labels
const (
	IssueTechnical = "Technical"
	IssueBilling   = "Billing"
	IssueAccount   = "Account"
	IssueGameplay  = "Gameplay"
	IssueOther     = "Other"
)

// IssueTypes is the closed set of complaint categories.
var IssueTypes = []string{
	IssueTechnical,
	IssueBilling,
	IssueAccount,
	IssueGameplay,
	IssueOther,
}

// IsValidIssueType reports whether the label belongs to the closed category set.
func IsValidIssueType(label string) bool {
	for _, t := range IssueTypes {
		if label == t {
			return true
		}
	}
	return false
}

// ComplaintRequest is one complaint form submission. It exists only for the
// duration of the request and is never persisted.
type ComplaintRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	GameID      string `json:"gameId"`
	Platform    string `json:"platform"`
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	DateOfIssue string `json:"dateOfIssue"`
	PhoneNumber string `json:"phoneNumber"`
}
