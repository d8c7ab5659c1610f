package validator

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"
)

// Required fails when value is empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MinLen fails when value has fewer than min characters.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) >= min },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at least %d characters long", min)},
	}
}

// MaxLen fails when value has more than max characters.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters long", max)},
	}
}

// ValidEmail fails unless value is a bare addr-spec with a dotted domain.
// Display-name forms such as "Ana <ana@example.com>" are rejected.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return isEmail(value) },
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

// ValidAddress accepts a mailbox as written in a From or To header: a bare
// address or one with a display name, as in "Retreat Hosts <hello@example.com>".
// The address part must pass ValidEmail.
func ValidAddress(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.ContainsAny(value, "\r\n") {
				return false
			}
			addr, err := mail.ParseAddress(value)
			return err == nil && isEmail(addr.Address)
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address"},
	}
}

func isEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return false
	}
	local, domain, ok := strings.Cut(value, "@")
	if !ok || local == "" {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") || strings.Contains(domain, "..") {
		return false
	}
	return strings.Contains(domain, ".")
}

// InList fails unless value is one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{Field: field, Message: "must be one of the allowed values"},
	}
}

// Present fails when value is nil. It is used for fields, such as yes/no
// choices, whose absence differs from their zero value.
func Present[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool { return value != nil },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}
