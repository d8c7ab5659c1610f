package registration

import (
	"net/url"
	"strings"

	"github.com/interalchemy/rewilding/pkg/sanitizer"
	"github.com/interalchemy/rewilding/pkg/validator"
)

// Input is the raw registration payload. Yes/no choices are pointers so an
// absent choice can be told apart from "no".
type Input struct {
	FirstName          string        `json:"firstName"`
	LastName           string        `json:"lastName"`
	AltFirstName       string        `json:"altFirstName"`
	AltLastName        string        `json:"altLastName"`
	Email              string        `json:"email"`
	Phone              string        `json:"phone"`
	Notes              string        `json:"notes"`
	RoomOption         RoomOption    `json:"roomOption"`
	PaymentMethod      PaymentMethod `json:"paymentMethod"`
	CouponCode         string        `json:"couponCode"`
	NewsletterOptIn    *bool         `json:"newsletterOptIn"`
	WhatsappGroupOptIn *bool         `json:"whatsappGroupOptIn"`
	WhatsappNumber     string        `json:"whatsappNumber"`
	Referral           string        `json:"referral"`
	Website            string        `json:"website"`
}

// BindForm fills the input from the registration form the way the browser
// client always has: text is trimmed and a radio counts as chosen only
// when its value is "yes".
func (in *Input) BindForm(v url.Values) error {
	text := func(key string) string { return sanitizer.Trim(v.Get(key)) }
	yes := func(key string) *bool {
		b := v.Get(key) == "yes"
		return &b
	}

	*in = Input{
		FirstName:          text("firstName"),
		LastName:           text("lastName"),
		AltFirstName:       text("altFirstName"),
		AltLastName:        text("altLastName"),
		Email:              text("email"),
		Phone:              text("phone"),
		Notes:              text("notes"),
		RoomOption:         RoomOption(v.Get("roomOption")),
		PaymentMethod:      PaymentMethod(v.Get("paymentMethod")),
		CouponCode:         text("couponCode"),
		NewsletterOptIn:    yes("newsletterOptIn"),
		WhatsappGroupOptIn: yes("whatsappGroupOptIn"),
		WhatsappNumber:     text("whatsappNumber"),
		Referral:           text("referral"),
		Website:            text("website"),
	}
	return nil
}

// Submission is a validated registration.
type Submission struct {
	FirstName          string
	LastName           string
	AltFirstName       string
	AltLastName        string
	Email              string
	Phone              string
	Notes              string
	RoomOption         RoomOption
	PaymentMethod      PaymentMethod
	CouponCode         string
	NewsletterOptIn    bool
	WhatsappGroupOptIn bool
	WhatsappNumber     string
	Referral           string
	Website            string
}

// Trapped reports whether the hidden website field was filled in, which
// only automated submitters do.
func (s Submission) Trapped() bool {
	return strings.TrimSpace(s.Website) != ""
}

// Validate checks in and returns the Submission, or validator.ValidationErrors
// listing every violated field in form order.
func Validate(in Input) (Submission, error) {
	err := validator.Apply(
		validator.Required("firstName", in.FirstName).WithMessage("First name is required"),
		validator.Required("lastName", in.LastName).WithMessage("Last name is required"),
		validator.ValidEmail("email", in.Email).WithMessage("Valid email is required"),
		validator.MinLen("phone", in.Phone, 6).WithMessage("Phone number is required"),
		validator.InList("roomOption", in.RoomOption, RoomOptions()).WithMessage("Invalid room option"),
		validator.InList("paymentMethod", in.PaymentMethod, PaymentMethods()).WithMessage("Invalid payment method"),
		validator.Present("newsletterOptIn", in.NewsletterOptIn).WithMessage("Newsletter choice is required"),
		validator.Present("whatsappGroupOptIn", in.WhatsappGroupOptIn).WithMessage("WhatsApp group choice is required"),
	)
	if err != nil {
		return Submission{}, err
	}

	return Submission{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		AltFirstName:       in.AltFirstName,
		AltLastName:        in.AltLastName,
		Email:              in.Email,
		Phone:              in.Phone,
		Notes:              in.Notes,
		RoomOption:         in.RoomOption,
		PaymentMethod:      in.PaymentMethod,
		CouponCode:         in.CouponCode,
		NewsletterOptIn:    *in.NewsletterOptIn,
		WhatsappGroupOptIn: *in.WhatsappGroupOptIn,
		WhatsappNumber:     in.WhatsappNumber,
		Referral:           in.Referral,
		Website:            in.Website,
	}, nil
}
