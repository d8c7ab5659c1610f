package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// FormBinder is implemented by inputs that decode themselves from form
// values, for example to map yes/no radios onto booleans.
type FormBinder interface {
	BindForm(values url.Values) error
}

// Form decodes application/x-www-form-urlencoded and multipart/form-data
// bodies into targets implementing FormBinder.
func Form(maxBytes int64) func(r *http.Request, v any) error {
	maxBytes = limit(maxBytes)
	return func(r *http.Request, v any) error {
		mt := mediaType(r)
		if mt != "application/x-www-form-urlencoded" && mt != "multipart/form-data" {
			return ErrNotApplicable
		}

		fb, ok := v.(FormBinder)
		if !ok {
			return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
		}

		r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
		var err error
		if mt == "multipart/form-data" {
			err = r.ParseMultipartForm(maxBytes)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			if tooLarge(err) {
				return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
			}
			return fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}

		if err := fb.BindForm(r.PostForm); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidForm, err)
		}
		return nil
	}
}
