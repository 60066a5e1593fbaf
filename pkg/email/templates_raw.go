package email

const (
	complaintReportTemplateHTML string = `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<title>New Complaint {{.ReferenceNumber}}</title>
	</head>
	<body>
		<div>
			<h1>New Complaint Submitted</h1>
			<p>Reference Number: <strong>{{.ReferenceNumber}}</strong></p>
			<table>
				<tr><td>Username</td><td>{{.Username}}</td></tr>
				<tr><td>Email</td><td>{{.Email}}</td></tr>
				{{if .GameID}}<tr><td>Game ID</td><td>{{.GameID}}</td></tr>{{end}}
				<tr><td>Platform</td><td>{{.Platform}}</td></tr>
				<tr><td>Issue Type</td><td>{{.IssueType}}</td></tr>
				<tr><td>Date of Issue</td><td>{{.DateOfIssue}}</td></tr>
				<tr><td>Phone Number</td><td>{{.PhoneNumber}}</td></tr>
			</table>
			<h2>Description</h2>
			<p>{{.Description}}</p>
			<p>Reply to the submitter quoting the reference number above.</p>
		</div>
	</body>
	</html>`

	complaintReportTextTemplate = `
		New Complaint Submitted

		Reference Number: {{.ReferenceNumber}}

		Username: {{.Username}}
		Email: {{.Email}}
		{{if .GameID}}Game ID: {{.GameID}}{{end}}
		Platform: {{.Platform}}
		Issue Type: {{.IssueType}}
		Date of Issue: {{.DateOfIssue}}
		Phone Number: {{.PhoneNumber}}

		Description:
		{{.Description}}

		---
		Reply to the submitter quoting the reference number above.`
)
