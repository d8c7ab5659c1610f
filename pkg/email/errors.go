package email

import "errors"

var (
	ErrInvalidMessage  = errors.New("email: invalid message")
	ErrInvalidConfig   = errors.New("email: invalid config")
	ErrUnknownProvider = errors.New("email: unknown provider")
	ErrSendFailed      = errors.New("email: send failed")
)

func isInvalid(err error) bool {
	return errors.Is(err, ErrInvalidMessage)
}
