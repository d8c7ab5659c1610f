package registration

import "fmt"

// RoomOption is the accommodation tier a guest books.
type RoomOption string

const (
	RoomSinglePrivate  RoomOption = "SINGLE_PRIVATE_1070"
	RoomCouplesPrivate RoomOption = "DOUBLE_PRIVATE_COUPLES_2080"
	RoomDoubleShared   RoomOption = "DOUBLE_SHARED_1040"
	RoomGroupShared    RoomOption = "GROUP_4_6_SHARED_980"
	RoomGroupOther     RoomOption = "GROUP_OTHER"
)

// RoomOptions lists every room option in display order.
func RoomOptions() []RoomOption {
	return []RoomOption{RoomSinglePrivate, RoomCouplesPrivate, RoomDoubleShared, RoomGroupShared, RoomGroupOther}
}

// Label returns the human-readable description used in emails and on the
// form. It panics on values outside the enumeration; callers validate first.
func (o RoomOption) Label() string {
	switch o {
	case RoomSinglePrivate:
		return "Single Person — Private Occupancy — $1070 USD"
	case RoomCouplesPrivate:
		return `Double ("couples") — Private Occupancy — $2080 USD`
	case RoomDoubleShared:
		return `Double (or "shared room") — $1040 USD (2–3 people, separate beds)`
	case RoomGroupShared:
		return `Group Rate 4–6 people ("shared room") — $980 USD per person`
	case RoomGroupOther:
		return "Group Rate (other) — specify in reply email"
	}
	panic(fmt.Sprintf("registration: unknown room option %q", string(o)))
}

// PaymentMethod is how a guest intends to pay.
type PaymentMethod string

const (
	PaymentETransferCAD     PaymentMethod = "ETRANSFER_CAD"
	PaymentDirectDepositCAD PaymentMethod = "DIRECT_DEPOSIT_CAD"
	PaymentETransferUSD     PaymentMethod = "ETRANSFER_USD"
	PaymentInternational    PaymentMethod = "INTERNATIONAL_ACCOUNT"
)

// PaymentMethods lists every payment method in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentETransferCAD, PaymentDirectDepositCAD, PaymentETransferUSD, PaymentInternational}
}

// Label returns the human-readable description. It panics on values
// outside the enumeration.
func (p PaymentMethod) Label() string {
	switch p {
	case PaymentETransferCAD:
		return "e-Transfer (CAD) — Canadian bank to Canadian bank"
	case PaymentDirectDepositCAD:
		return "Direct deposit — Canadian bank"
	case PaymentETransferUSD:
		return "e-Transfer in USD"
	case PaymentInternational:
		return "Deposit with international account"
	}
	panic(fmt.Sprintf("registration: unknown payment method %q", string(p)))
}
