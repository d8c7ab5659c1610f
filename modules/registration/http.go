package registration

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/interalchemy/rewilding/binder"
	"github.com/interalchemy/rewilding/handler"
)

// Element ids patched by Datastar responses.
const (
	StatusTarget = "#registration-status"
	ErrorTarget  = "#registration-error"
)

// Views render the Datastar fragments. Both are optional; without them
// Datastar clients receive the JSON envelope.
type Views struct {
	Success func() templ.Component
	Error   func(handler.ErrorView) templ.Component
}

// Handler serves the registration endpoint.
type Handler struct {
	svc          *Service
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	maxBytes     int64
}

// NewHandler builds the HTTP layer around svc. A nil errorHandler gets the
// default JSON error handler wired to views.Error.
func NewHandler(svc *Service, views Views, errorHandler handler.ErrorHandler[handler.Context]) *Handler {
	if errorHandler == nil {
		errorHandler = handler.NewErrorHandler(svc.log, handler.ErrorHandlerConfig{
			Fragment: views.Error,
			Target:   ErrorTarget,
		})
	}
	return &Handler{
		svc:          svc,
		views:        views,
		errorHandler: errorHandler,
		maxBytes:     32 << 10,
	}
}

// Handle mounts POST / on a new router, to be mounted at
// /api/rewilding/register.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post("/", handler.Wrap(h.register,
		handler.WithBinders[handler.Context, Input](
			binder.JSON(h.maxBytes),
			binder.Form(h.maxBytes),
		),
		handler.WithErrorHandler[handler.Context, Input](h.errorHandler),
		handler.WithDecorators(handler.Recover[handler.Context, Input](h.svc.log)),
	))
	return r
}

func (h *Handler) register(ctx handler.Context, in Input) handler.Response {
	if _, err := h.svc.Register(ctx, in); err != nil {
		return handler.Fail(err)
	}
	if h.views.Success != nil && handler.IsDataStar(ctx.Request()) {
		return handler.Templ(h.views.Success(),
			handler.WithTarget(StatusTarget),
			handler.WithPatchMode(handler.PatchInner),
		)
	}
	return handler.OK()
}
