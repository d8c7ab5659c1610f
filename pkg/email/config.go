package email

import (
	"fmt"
	"strings"
)

// Provider names accepted in EMAIL_PROVIDER.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// Config selects and configures the delivery provider. Only the credential
// of the selected provider is consulted.
type Config struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevOutputDir         string `env:"EMAIL_DEV_DIR"`
}

func (c Config) provider() string {
	return strings.ToLower(strings.TrimSpace(c.Provider))
}

// Credential returns the credential of the selected provider, or "" when
// it is unset or the provider is unknown. For the dev provider the output
// directory plays that role.
func (c Config) Credential() string {
	switch c.provider() {
	case ProviderResend:
		return c.ResendAPIKey
	case ProviderPostmark:
		return c.PostmarkServerToken
	case ProviderDev:
		return c.DevOutputDir
	default:
		return ""
	}
}

// CredentialVar names the environment variable Credential reads.
func (c Config) CredentialVar() string {
	switch c.provider() {
	case ProviderPostmark:
		return "POSTMARK_SERVER_TOKEN"
	case ProviderDev:
		return "EMAIL_DEV_DIR"
	default:
		return "RESEND_API_KEY"
	}
}

// NewSender builds the Sender for the selected provider.
func NewSender(cfg Config) (Sender, error) {
	if cfg.Credential() == "" {
		if p := cfg.provider(); p != ProviderResend && p != ProviderPostmark && p != ProviderDev {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
		}
		return nil, fmt.Errorf("%w: %s is not set", ErrInvalidConfig, cfg.CredentialVar())
	}

	switch cfg.provider() {
	case ProviderPostmark:
		return NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken), nil
	case ProviderDev:
		return NewDevSender(cfg.DevOutputDir), nil
	default:
		return NewResendSender(cfg.ResendAPIKey), nil
	}
}
