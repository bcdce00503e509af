// Package email provides transactional email delivery behind the Sender
// interface, with a Postmark-backed implementation for production and a
// disk-writing DevSender for local development.
package email
