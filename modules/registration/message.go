package registration

import (
	"strings"

	"github.com/interalchemy/rewilding/pkg/email"
	"github.com/interalchemy/rewilding/pkg/sanitizer"
)

// Provider tags attached to the two outbound messages.
const (
	TagHost  = "registration-host"
	TagGuest = "registration-guest"
)

const guestSubject = "We received your registration — Interalchemy Rewilding"

var headerSafe = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.MaxLength(100))

// HostMessage is the notification sent to the retreat hosts. Replies go to
// the guest.
func HostMessage(s Submission, from, to string) email.Message {
	return email.Message{
		From:    from,
		To:      to,
		ReplyTo: s.Email,
		Subject: "New Rewilding Registration — " + headerSafe(s.FirstName+" "+s.LastName),
		Text:    hostBody(s),
		Tag:     TagHost,
	}
}

// GuestMessage is the confirmation sent to the guest.
func GuestMessage(s Submission, from string) email.Message {
	return email.Message{
		From:    from,
		To:      s.Email,
		Subject: guestSubject,
		Text:    guestBody(s),
		Tag:     TagGuest,
	}
}

func hostBody(s Submission) string {
	return strings.Join([]string{
		"New registration received:",
		"",
		"Name: " + s.FirstName + " " + s.LastName,
		strings.TrimSpace("Alt name: " + strings.TrimSpace(s.AltFirstName) + " " + strings.TrimSpace(s.AltLastName)),
		"Email: " + s.Email,
		"Phone: " + s.Phone,
		"",
		"Room option: " + s.RoomOption.Label(),
		"Payment method: " + s.PaymentMethod.Label(),
		"Coupon code: " + orElse(s.CouponCode, "(none)"),
		"",
		"Newsletter opt-in: " + yesNo(s.NewsletterOptIn),
		"WhatsApp group opt-in: " + yesNo(s.WhatsappGroupOptIn),
		"WhatsApp number: " + orElse(s.WhatsappNumber, "(same as phone or not provided)"),
		"",
		"How they heard: " + orElse(s.Referral, "(not provided)"),
		"",
		"Notes: " + orElse(s.Notes, "(none)"),
	}, "\n")
}

func guestBody(s Submission) string {
	return strings.Join([]string{
		"Hi " + s.FirstName + ",",
		"",
		"Thank you — we received your registration for Rewilding in the Amazon (Jan 26–31, 2026).",
		"We’ll reply soon with next steps and your invoice/payment details.",
		"",
		"Your selection:",
		"• " + s.RoomOption.Label(),
		"• Payment: " + s.PaymentMethod.Label(),
		"",
		"If you need to update anything, reply to this email.",
		"",
		"— Interalchemy Rewilding",
	}, "\n")
}

func orElse(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
