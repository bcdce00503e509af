package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactform/pkg/email"
	"github.com/dmitrymomot/contactform/pkg/ratelimit"
)

// dispatchTag labels outbound messages for provider-side filtering.
const dispatchTag = "contact-form"

// ErrDispatchFailed wraps any delivery failure. The underlying provider
// detail is logged server-side and never exposed to the caller.
var ErrDispatchFailed = errors.New("contact: failed to dispatch email")

// Service runs the contact pipeline after HTTP concerns are handled:
// rate-limit checks, rendering, and dispatch to the configured recipient.
type Service struct {
	sender    email.Sender
	limiter   ratelimit.Limiter
	recipient string
	log       *slog.Logger
	now       func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger supplies a logger for dispatch failures. Defaults to slog.Default().
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source, primarily for deterministic tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the contact pipeline service. The recipient is the
// single fixed address all submissions are delivered to.
func NewService(sender email.Sender, limiter ratelimit.Limiter, recipient string, opts ...ServiceOption) *Service {
	s := &Service{
		sender:    sender,
		limiter:   limiter,
		recipient: recipient,
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allow consults the rate limiter for the given client key. A store
// failure fails open: abuse mitigation is best-effort and should not take
// the form down with it, so the error is logged and the request allowed.
func (s *Service) Allow(ctx context.Context, clientKey string) bool {
	res, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		s.log.WarnContext(ctx, "rate limiter unavailable, allowing request",
			slog.String("client_key", clientKey),
			slog.Any("error", err),
		)
		return true
	}
	return res.Allowed
}

// Submit renders the submission and dispatches it to the configured
// recipient with reply-to set to the submitter, so replies route straight
// back to them. Provider rejections and transport failures are logged
// with distinct detail and collapsed into ErrDispatchFailed.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	rendered := Render(sub, s.now())

	err := s.sender.Send(ctx, email.SendParams{
		To:       s.recipient,
		ReplyTo:  sub.Email,
		Subject:  rendered.Subject,
		BodyHTML: rendered.HTML,
		BodyText: rendered.Text,
		Tag:      dispatchTag,
	})
	if err != nil {
		switch {
		case errors.Is(err, email.ErrSendRejected):
			s.log.ErrorContext(ctx, "email provider rejected message", slog.Any("error", err))
		case errors.Is(err, email.ErrSendTransport):
			s.log.ErrorContext(ctx, "email provider unreachable", slog.Any("error", err))
		default:
			s.log.ErrorContext(ctx, "email dispatch failed", slog.Any("error", err))
		}
		return errors.Join(ErrDispatchFailed, err)
	}

	return nil
}
