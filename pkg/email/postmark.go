package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkSender delivers through Postmark's transactional API.
type PostmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender returns a sender for the given server token. The account
// token is optional for sending.
func NewPostmarkSender(serverToken, accountToken string) *PostmarkSender {
	return &PostmarkSender{client: postmark.NewClient(serverToken, accountToken)}
}

// WithBaseURL points the client at another API root. Used by tests.
func (s *PostmarkSender) WithBaseURL(u string) *PostmarkSender {
	s.client.BaseURL = u
	return s
}

func (s *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         msg.To,
		ReplyTo:    msg.ReplyTo,
		Subject:    msg.Subject,
		TextBody:   msg.Text,
		HTMLBody:   msg.HTML,
		Tag:        msg.Tag,
		TrackOpens: msg.HTML != "",
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
