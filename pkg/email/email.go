package email

import (
	"context"
	"fmt"

	"github.com/interalchemy/rewilding/pkg/validator"
)

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// Message is a provider-neutral transactional email. At least one of Text
// and HTML must be set. ReplyTo is optional.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"-"`
	HTML    string `json:"-"`
	Tag     string `json:"tag,omitempty"`
}

// Validate reports an ErrInvalidMessage wrapping the violations. From and To
// may carry a display name; ReplyTo must be a bare address.
func (m Message) Validate() error {
	rules := []validator.Rule{
		validator.ValidAddress("from", m.From),
		validator.ValidAddress("to", m.To),
		validator.Required("subject", m.Subject),
		validator.Required("body", m.Text+m.HTML),
	}
	if m.ReplyTo != "" {
		rules = append(rules, validator.ValidEmail("reply_to", m.ReplyTo))
	}
	if err := validator.Apply(rules...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	return nil
}
