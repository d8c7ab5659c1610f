package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// JSON decodes application/json bodies, and bodies sent without a content
// type, into v. Unknown keys are ignored. Decode errors are wrapped with
// ErrInvalidJSON and keep the underlying *json.SyntaxError or
// *json.UnmarshalTypeError reachable through errors.As.
func JSON(maxBytes int64) func(r *http.Request, v any) error {
	maxBytes = limit(maxBytes)
	return func(r *http.Request, v any) error {
		mt := mediaType(r)
		if mt != "" && mt != "application/json" && !strings.HasSuffix(mt, "+json") {
			return ErrNotApplicable
		}

		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBytes))
		if err := dec.Decode(v); err != nil {
			switch {
			case tooLarge(err):
				return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
			case errors.Is(err, io.EOF):
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			default:
				return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
			}
		}

		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			if tooLarge(err) {
				return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
			}
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}
		return nil
	}
}
