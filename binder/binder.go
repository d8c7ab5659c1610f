// Package binder decodes request bodies into handler inputs. Each binder
// returns ErrNotApplicable when the request's content type is not its own,
// so several binders can be chained and the first matching one wins.
package binder

import (
	"errors"
	"mime"
	"net/http"
	"strings"
)

var (
	ErrNotApplicable   = errors.New("binder: not applicable to this request")
	ErrInvalidJSON     = errors.New("binder: invalid JSON")
	ErrInvalidForm     = errors.New("binder: invalid form data")
	ErrBodyTooLarge    = errors.New("binder: request body too large")
	ErrUnsupportedType = errors.New("binder: target does not support form binding")
)

// DefaultMaxBytes caps request bodies when no explicit limit is given.
const DefaultMaxBytes int64 = 64 << 10

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

func limit(n int64) int64 {
	if n <= 0 {
		return DefaultMaxBytes
	}
	return n
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
