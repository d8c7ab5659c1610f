package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers through the Resend API.
type ResendSender struct {
	client *resend.Client
}

// ResendOption configures a ResendSender.
type ResendOption func(*resend.Client)

// WithResendBaseURL points the client at another API root. Used by tests.
func WithResendBaseURL(raw string) ResendOption {
	return func(c *resend.Client) {
		if u, err := url.Parse(raw); err == nil {
			c.BaseURL = u
		}
	}
}

// NewResendSender returns a sender authenticated with apiKey.
func NewResendSender(apiKey string, opts ...ResendOption) *ResendSender {
	client := resend.NewClient(apiKey)
	for _, opt := range opts {
		opt(client)
	}
	return &ResendSender{client: client}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Tag}}
	}

	resp, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp == nil || resp.Id == "" {
		return errors.Join(ErrSendFailed, fmt.Errorf("resend: empty message id"))
	}
	return nil
}
