// Package registration accepts retreat registrations.
//
// A submission is validated, checked against the hidden trap field, and
// then sent as two plain-text emails: a notification to the hosts with
// Reply-To set to the guest, and a confirmation to the guest. Nothing is
// stored. When the destination, sender or provider credential is missing
// the submission is acknowledged and the gap is logged.
//
// The HTTP endpoint speaks JSON ({"ok":true} or {"ok":false,...}) and, for
// the Datastar-driven form, answers with element patches instead.
package registration
