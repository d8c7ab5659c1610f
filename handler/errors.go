package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse is reported when a handler returns nil.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrPanic wraps values recovered by the Recover decorator.
	ErrPanic = errors.New("handler panicked")
)

// HTTPError carries a status code and a client-facing message key.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string { return e.Key }

func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest      = NewHTTPError(http.StatusBadRequest, "Bad request")
	ErrRequestTooLarge = NewHTTPError(http.StatusRequestEntityTooLarge, "Request too large")
)

// failed is a Response whose rendering always fails with err, handing
// control to the error handler.
type failed struct{ err error }

func (f failed) Render(http.ResponseWriter, *http.Request) error { return f.err }

// Fail returns a Response that routes err through the error handler.
func Fail(err error) Response { return failed{err: err} }
