package email

// Config holds email delivery configuration.
// The Postmark tokens are optional to support development environments
// where delivery is replaced by the DevSender. SenderEmail establishes
// the From identity for all outbound messages; SenderName is an optional
// display name.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SenderName           string `env:"SENDER_NAME"`
}
