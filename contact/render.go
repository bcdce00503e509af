package contact

import (
	"strings"
	"time"

	"github.com/dmitrymomot/contactform/pkg/sanitizer"
)

// timestampLayout is the human-readable send time embedded in both bodies.
const timestampLayout = "January 2, 2006 at 15:04 MST"

// Rendered holds the outbound email content derived from a submission.
type Rendered struct {
	Subject string
	HTML    string
	Text    string
}

// Render builds the email subject, HTML body, and plain-text body for a
// validated submission. Output is deterministic for a fixed submission and
// timestamp. User-supplied values are tag-escaped in the HTML body only;
// the plain-text body carries them verbatim. Optional fields absent from
// the submission are omitted entirely, not rendered as empty lines.
func Render(sub Submission, now time.Time) Rendered {
	subject := subjectLine(sub)
	return Rendered{
		Subject: subject,
		HTML:    renderHTML(sub, subject, now),
		Text:    renderText(sub, rawSubjectLine(sub), now),
	}
}

func subjectLine(sub Submission) string {
	if s := sanitizer.TrimEscapeTags(sub.Subject); s != "" {
		return "Contact form: " + s
	}
	return "New contact from " + sanitizer.TrimEscapeTags(sub.Name)
}

// rawSubjectLine mirrors subjectLine without escaping, for the plain-text
// body where no HTML-injection risk exists.
func rawSubjectLine(sub Submission) string {
	if s := strings.TrimSpace(sub.Subject); s != "" {
		return "Contact form: " + s
	}
	return "New contact from " + strings.TrimSpace(sub.Name)
}

func renderHTML(sub Submission, subject string, now time.Time) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(subject)
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString("<h2>New contact form submission</h2>\n")

	writeHTMLField(&b, "Name", sanitizer.TrimEscapeTags(sub.Name))
	writeHTMLField(&b, "Email", sanitizer.TrimEscapeTags(sub.Email))
	if v := sanitizer.TrimEscapeTags(sub.Phone); v != "" {
		writeHTMLField(&b, "Phone", v)
	}
	if v := sanitizer.TrimEscapeTags(sub.Company); v != "" {
		writeHTMLField(&b, "Company", v)
	}
	writeHTMLField(&b, "Subject", subject)

	b.WriteString("<p><strong>Message:</strong></p>\n<p>")
	b.WriteString(strings.ReplaceAll(sanitizer.TrimEscapeTags(sub.Message), "\n", "<br>\n"))
	b.WriteString("</p>\n<hr>\n<p><em>Sent on ")
	b.WriteString(now.Format(timestampLayout))
	b.WriteString("</em></p>\n</body>\n</html>\n")

	return b.String()
}

func writeHTMLField(b *strings.Builder, label, value string) {
	b.WriteString("<p><strong>")
	b.WriteString(label)
	b.WriteString(":</strong> ")
	b.WriteString(value)
	b.WriteString("</p>\n")
}

func renderText(sub Submission, subject string, now time.Time) string {
	var b strings.Builder

	b.WriteString("New contact form submission\n\n")
	b.WriteString("Name: " + sub.Name + "\n")
	b.WriteString("Email: " + sub.Email + "\n")
	if sub.Phone != "" {
		b.WriteString("Phone: " + sub.Phone + "\n")
	}
	if sub.Company != "" {
		b.WriteString("Company: " + sub.Company + "\n")
	}
	b.WriteString("Subject: " + subject + "\n\n")
	b.WriteString("Message:\n")
	b.WriteString(sub.Message)
	b.WriteString("\n\nSent on " + now.Format(timestampLayout) + "\n")

	return b.String()
}
