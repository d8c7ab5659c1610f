package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/a-h/templ"

	"github.com/interalchemy/rewilding/binder"
	"github.com/interalchemy/rewilding/pkg/logger"
	"github.com/interalchemy/rewilding/pkg/requestid"
	"github.com/interalchemy/rewilding/pkg/validator"
)

// ErrorView is what an error fragment is rendered from.
type ErrorView struct {
	Status    int
	Message   string
	Issues    []Issue
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// InvalidMessage is shown for 400 responses. Default "Invalid submission".
	InvalidMessage string
	// ServerMessage is shown for 5xx responses. Default "Server error".
	ServerMessage string
	// Fragment renders the error for Datastar requests. Without it they get
	// the JSON envelope.
	Fragment func(ErrorView) templ.Component
	// Target is the element the fragment is patched into.
	Target string
}

// NewErrorHandler answers errors with the JSON envelope, or with a
// Datastar patch of cfg.Fragment. Bind and validation failures become 400
// with per-field issues; HTTPError keeps its code; everything else is a
// generic 500. 4xx are logged at warn, 5xx at error.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.InvalidMessage == "" {
		cfg.InvalidMessage = "Invalid submission"
	}
	if cfg.ServerMessage == "" {
		cfg.ServerMessage = "Server error"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		view := classify(err, cfg)
		view.RequestID = requestid.FromContext(r.Context())

		level := slog.LevelError
		if view.Status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.Component("error_handler"),
			logger.Error(err),
			slog.Int("status_code", view.Status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
		)

		var resp Response = JSONError(view.Status, view.Message, view.Issues...)
		if cfg.Fragment != nil && IsDataStar(r) {
			resp = Templ(cfg.Fragment(view), WithTarget(cfg.Target), WithPatchMode(PatchInner))
		}
		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Component("error_handler"),
				logger.Error(rerr),
			)
		}
	}
}

func classify(err error, cfg ErrorHandlerConfig) ErrorView {
	if ve := validator.Extract(err); ve != nil {
		return ErrorView{Status: http.StatusBadRequest, Message: cfg.InvalidMessage, Issues: Issues(ve)}
	}

	var ute *json.UnmarshalTypeError
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrorView{Status: ErrRequestTooLarge.Code, Message: ErrRequestTooLarge.Key}
	case errors.As(err, &ute):
		return ErrorView{Status: http.StatusBadRequest, Message: cfg.InvalidMessage, Issues: []Issue{{
			Path:    fieldPath(ute.Field),
			Message: fmt.Sprintf("Expected %s, received %s", kindName(ute.Type), ute.Value),
		}}}
	case errors.Is(err, binder.ErrInvalidJSON):
		return ErrorView{Status: http.StatusBadRequest, Message: cfg.InvalidMessage, Issues: []Issue{{
			Path:    []string{},
			Message: "Request body must be a JSON object",
		}}}
	case errors.Is(err, binder.ErrInvalidForm), errors.Is(err, binder.ErrUnsupportedType):
		return ErrorView{Status: http.StatusBadRequest, Message: cfg.InvalidMessage, Issues: []Issue{{
			Path:    []string{},
			Message: "Form data could not be read",
		}}}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		return ErrorView{Status: httpErr.Code, Message: httpErr.Key}
	}
	return ErrorView{Status: http.StatusInternalServerError, Message: cfg.ServerMessage}
}

// Issues converts validation errors to response issues, keeping order.
func Issues(ve validator.ValidationErrors) []Issue {
	issues := make([]Issue, 0, len(ve))
	for _, e := range ve {
		issues = append(issues, Issue{Path: fieldPath(e.Field), Message: e.Message})
	}
	return issues
}

func fieldPath(field string) []string {
	if field == "" {
		return []string{}
	}
	return strings.Split(field, ".")
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return t.String()
	}
}
