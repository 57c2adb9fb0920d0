package preview

import "errors"

var (
	ErrUnknownTemplate   = errors.New("unknown template")
	ErrInvalidTab        = errors.New("invalid tab")
	ErrNothingSelected   = errors.New("no template selected")
	ErrNothingToSend     = errors.New("nothing rendered to send")
	ErrNoRecipient       = errors.New("no test recipient")
	ErrSenderUnavailable = errors.New("email sender not configured")
)
