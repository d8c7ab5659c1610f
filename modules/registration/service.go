package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/interalchemy/rewilding/pkg/email"
	"github.com/interalchemy/rewilding/pkg/logger"
)

// ErrDelivery is returned when either outbound message fails.
var ErrDelivery = errors.New("registration: email delivery failed")

// Config holds the delivery settings. Credential and CredentialVar are
// filled from the email provider configuration, not read directly.
type Config struct {
	To   string `env:"REWILDING_TO_EMAIL"`
	From string `env:"REWILDING_FROM_EMAIL"`

	Credential    string `env:"-"`
	CredentialVar string `env:"-"`
}

// Missing lists the environment variables that are unset or blank.
func (c Config) Missing() []string {
	credVar := c.CredentialVar
	if credVar == "" {
		credVar = "RESEND_API_KEY"
	}
	var missing []string
	for _, v := range []struct{ name, value string }{
		{credVar, c.Credential},
		{"REWILDING_TO_EMAIL", c.To},
		{"REWILDING_FROM_EMAIL", c.From},
	} {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.name)
		}
	}
	return missing
}

// Outcome classifies a registration attempt.
type Outcome string

const (
	OutcomeInvalid      Outcome = "invalid"
	OutcomeTrapped      Outcome = "trapped"
	OutcomeUnconfigured Outcome = "unconfigured"
	OutcomeSent         Outcome = "sent"
	OutcomeFailed       Outcome = "failed"
)

// Observer records registration outcomes.
type Observer interface {
	ObserveRegistration(outcome string)
}

// Service validates registrations and notifies the hosts and the guest.
// It keeps no state between calls.
type Service struct {
	cfg    Config
	sender email.Sender
	log    *slog.Logger
	obs    Observer
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Service) { s.obs = o }
}

// NewService returns a Service. sender may be nil when cfg is incomplete;
// registrations are then accepted without sending.
func NewService(cfg Config, sender email.Sender, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		sender: sender,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register runs one registration. A nil error means the caller should
// report success, which includes trapped and unconfigured submissions.
// Validation failures return validator.ValidationErrors; delivery failures
// return ErrDelivery.
func (s *Service) Register(ctx context.Context, in Input) (Outcome, error) {
	outcome, err := s.register(ctx, in)
	if s.obs != nil {
		s.obs.ObserveRegistration(string(outcome))
	}
	return outcome, err
}

func (s *Service) register(ctx context.Context, in Input) (Outcome, error) {
	sub, err := Validate(in)
	if err != nil {
		return OutcomeInvalid, err
	}

	if sub.Trapped() {
		s.log.InfoContext(ctx, "registration trap field filled, discarding",
			logger.Component("registration"),
			logger.Event("trapped"),
		)
		return OutcomeTrapped, nil
	}

	if missing := s.cfg.Missing(); len(missing) > 0 {
		s.log.ErrorContext(ctx, "Missing env vars: "+strings.Join(missing, ", "),
			logger.Component("registration"),
			logger.Event("unconfigured"),
			logger.Missing(missing...),
		)
		return OutcomeUnconfigured, nil
	}
	if s.sender == nil {
		s.log.ErrorContext(ctx, "no email sender available, registration not delivered",
			logger.Component("registration"),
			logger.Event("unconfigured"),
		)
		return OutcomeUnconfigured, nil
	}

	// Both messages are always attempted; a failure of one does not stop the other.
	var errs []error
	for _, msg := range []email.Message{
		HostMessage(sub, s.cfg.From, s.cfg.To),
		GuestMessage(sub, s.cfg.From),
	} {
		if err := s.sender.Send(ctx, msg); err != nil {
			s.log.ErrorContext(ctx, "registration email failed",
				logger.Component("registration"),
				logger.MailTag(msg.Tag),
				logger.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", msg.Tag, err))
		}
	}
	if len(errs) > 0 {
		return OutcomeFailed, fmt.Errorf("%w: %w", ErrDelivery, errors.Join(errs...))
	}

	s.log.InfoContext(ctx, "registration sent",
		logger.Component("registration"),
		slog.String("room_option", string(sub.RoomOption)),
		slog.String("payment_method", string(sub.PaymentMethod)),
	)
	return OutcomeSent, nil
}
