package email

import "errors"

var (
	// ErrInvalidConfig indicates the sender was constructed with missing or invalid configuration.
	ErrInvalidConfig = errors.New("email: invalid config")
	// ErrInvalidParams indicates the send parameters are incomplete.
	ErrInvalidParams = errors.New("email: invalid send params")
	// ErrSendRejected indicates the provider accepted the call but rejected the message.
	ErrSendRejected = errors.New("email: provider rejected message")
	// ErrSendTransport indicates the provider could not be reached or the call itself failed.
	ErrSendTransport = errors.New("email: transport failure")
)
