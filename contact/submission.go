package contact

import (
	"github.com/dmitrymomot/contactform/pkg/validator"
)

// DefaultMaxMessageLength bounds the raw (untrimmed) message length.
const DefaultMaxMessageLength = 2000

// SubmitRequest is the raw JSON payload of a contact-form submission.
// Field presence and shape are not trusted until Validate has run.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Subject string `json:"subject,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// Validate checks the submission rules, collecting every failure:
//
//   - name: present, at least 2 characters after trimming
//   - email: present, local@domain.tld shape
//   - message: present, at least 10 characters trimmed, raw length capped
//
// Subject, phone, and company are deliberately accepted unchecked; they
// are sanitized at render time. A maxMessageLen of zero or less applies
// DefaultMaxMessageLength.
func (r SubmitRequest) Validate(maxMessageLen int) error {
	if maxMessageLen <= 0 {
		maxMessageLen = DefaultMaxMessageLength
	}

	return validator.Apply(
		validator.RequiredString("name", r.Name),
		validator.TrimmedMinLen("name", r.Name, 2),
		validator.RequiredString("email", r.Email),
		validator.EmailAddress("email", r.Email),
		validator.RequiredString("message", r.Message),
		validator.TrimmedMinLen("message", r.Message, 10),
		validator.MaxLenString("message", r.Message, maxMessageLen),
	)
}

// Submission is a validated contact-form submission. Construct it with
// SubmitRequest.Submission after Validate succeeds; nothing downstream
// re-checks the fields.
type Submission struct {
	Name    string
	Email   string
	Message string
	Subject string
	Phone   string
	Company string
}

// Submission converts the validated request into the typed form passed to
// rendering and dispatch. Values are carried as submitted; trimming and
// escaping happen at render time per output format.
func (r SubmitRequest) Submission() Submission {
	return Submission(r)
}
