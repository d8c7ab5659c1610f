// Package email sends transactional messages through a pluggable provider.
//
// Sender is the single capability the rest of the site depends on. Three
// implementations exist: ResendSender (default), PostmarkSender, and
// DevSender, which writes messages to disk for local runs. NewSender picks
// one from Config, loaded from EMAIL_PROVIDER and the matching credential.
//
// Every implementation validates the Message first and returns
// ErrInvalidMessage without contacting the provider when it is malformed.
// Provider failures are joined with ErrSendFailed.
package email
