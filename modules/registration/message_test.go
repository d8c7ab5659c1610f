package registration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interalchemy/rewilding/modules/registration"
)

func TestHostMessage(t *testing.T) {
	t.Parallel()

	t.Run("minimal submission", func(t *testing.T) {
		t.Parallel()
		sub, err := registration.Validate(validInput())
		require.NoError(t, err)

		msg := registration.HostMessage(sub, "from@interalchemy.example", "hosts@interalchemy.example")
		assert.Equal(t, "from@interalchemy.example", msg.From)
		assert.Equal(t, "hosts@interalchemy.example", msg.To)
		assert.Equal(t, "ana@example.com", msg.ReplyTo)
		assert.Equal(t, "New Rewilding Registration — Ana Li", msg.Subject)
		assert.Equal(t, registration.TagHost, msg.Tag)
		assert.Equal(t, "New registration received:\n"+
			"\n"+
			"Name: Ana Li\n"+
			"Alt name:\n"+
			"Email: ana@example.com\n"+
			"Phone: 555-0101\n"+
			"\n"+
			"Room option: Group Rate (other) — specify in reply email\n"+
			"Payment method: e-Transfer in USD\n"+
			"Coupon code: (none)\n"+
			"\n"+
			"Newsletter opt-in: No\n"+
			"WhatsApp group opt-in: No\n"+
			"WhatsApp number: (same as phone or not provided)\n"+
			"\n"+
			"How they heard: (not provided)\n"+
			"\n"+
			"Notes: (none)", msg.Text)
	})

	t.Run("full submission", func(t *testing.T) {
		t.Parallel()
		in := validInput()
		in.AltFirstName, in.AltLastName = " Anita ", ""
		in.CouponCode = "EARLY"
		in.NewsletterOptIn, in.WhatsappGroupOptIn = ptr(true), ptr(true)
		in.WhatsappNumber = "+1 555 0102"
		in.Referral = "Instagram"
		in.Notes = "Vegetarian"
		sub, err := registration.Validate(in)
		require.NoError(t, err)

		text := registration.HostMessage(sub, "f@x.example", "t@x.example").Text
		assert.Contains(t, text, "\nAlt name: Anita\n")
		assert.Contains(t, text, "\nCoupon code: EARLY\n")
		assert.Contains(t, text, "\nNewsletter opt-in: Yes\nWhatsApp group opt-in: Yes\n")
		assert.Contains(t, text, "\nWhatsApp number: +1 555 0102\n")
		assert.Contains(t, text, "\nHow they heard: Instagram\n")
		assert.Contains(t, text, "\nNotes: Vegetarian")
	})

	t.Run("subject stays on one line", func(t *testing.T) {
		t.Parallel()
		in := validInput()
		in.LastName = "Li\r\nBcc: victim@example.com"
		sub, err := registration.Validate(in)
		require.NoError(t, err)

		subject := registration.HostMessage(sub, "f@x.example", "t@x.example").Subject
		assert.NotContains(t, subject, "\n")
		assert.NotContains(t, subject, "\r")
		assert.Equal(t, "New Rewilding Registration — Ana Li Bcc: victim@example.com", subject)
	})
}

func TestGuestMessage(t *testing.T) {
	t.Parallel()

	sub, err := registration.Validate(validInput())
	require.NoError(t, err)

	msg := registration.GuestMessage(sub, "from@interalchemy.example")
	assert.Equal(t, "ana@example.com", msg.To)
	assert.Empty(t, msg.ReplyTo)
	assert.Equal(t, "We received your registration — Interalchemy Rewilding", msg.Subject)
	assert.Equal(t, registration.TagGuest, msg.Tag)
	assert.Equal(t, "Hi Ana,\n"+
		"\n"+
		"Thank you — we received your registration for Rewilding in the Amazon (Jan 26–31, 2026).\n"+
		"We’ll reply soon with next steps and your invoice/payment details.\n"+
		"\n"+
		"Your selection:\n"+
		"• Group Rate (other) — specify in reply email\n"+
		"• Payment: e-Transfer in USD\n"+
		"\n"+
		"If you need to update anything, reply to this email.\n"+
		"\n"+
		"— Interalchemy Rewilding", msg.Text)
}
