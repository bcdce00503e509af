package contact

import "time"

// Config holds the environment-sourced settings for the contact pipeline.
type Config struct {
	// RecipientEmail is the single fixed address submissions are delivered to.
	RecipientEmail string `env:"RECIPIENT_EMAIL,required"`

	// AllowedOrigins is the CORS allow-list. Empty allows all origins.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// MessageMaxLength caps the raw message length.
	MessageMaxLength int `env:"MESSAGE_MAX_LENGTH" envDefault:"2000"`

	// RateLimitRequests is the per-client request cap within one window.
	RateLimitRequests int `env:"RATE_LIMIT_REQUESTS" envDefault:"5"`

	// RateLimitWindow is the fixed rate-limit window duration.
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
}
