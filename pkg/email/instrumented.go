package email

import (
	"context"
	"time"
)

// Observer records the outcome of each send.
type Observer interface {
	ObserveEmailSend(tag, outcome string, elapsed time.Duration)
}

// Outcomes reported to an Observer.
const (
	OutcomeSent    = "sent"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Instrumented wraps next so every send is reported to obs.
func Instrumented(next Sender, obs Observer) Sender {
	return SenderFunc(func(ctx context.Context, msg Message) error {
		start := time.Now()
		err := next.Send(ctx, msg)

		outcome := OutcomeSent
		switch {
		case err == nil:
		case isInvalid(err):
			outcome = OutcomeInvalid
		default:
			outcome = OutcomeFailed
		}
		obs.ObserveEmailSend(msg.Tag, outcome, time.Since(start))
		return err
	})
}
