package email

import (
	"context"
	"fmt"
	"strings"
)

// Sender represents an interface for sending emails.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams represents the parameters for sending an email.
type SendParams struct {
	To       string `json:"to"`                  // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"`  // Reply-To address, typically the form submitter
	Subject  string `json:"subject"`             // Subject of the email
	BodyHTML string `json:"body_html"`           // HTML body of the email
	BodyText string `json:"body_text,omitempty"` // Plain-text body of the email
	Tag      string `json:"tag,omitempty"`       // Optional provider-side tag
}

// Validate checks that the parameters are sufficient to send an email.
func (p SendParams) Validate() error {
	if strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" && strings.TrimSpace(p.BodyText) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidParams)
	}
	return nil
}
