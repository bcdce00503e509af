// Package contact implements the contact-form delivery pipeline: a
// method-gated HTTP endpoint that rate-limits per client, validates and
// sanitizes the submitted payload, renders an HTML and plain-text email,
// and dispatches it through a transactional email provider with reply-to
// set to the submitter.
package contact
