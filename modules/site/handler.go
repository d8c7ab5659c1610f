package site

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/interalchemy/rewilding/handler"
)

// Handler serves the public pages.
type Handler struct {
	views *Views
	log   *slog.Logger
}

func NewHandler(views *Views, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{views: views, log: log}
}

// Handle returns the page router: /, /rewilding, /rewilding/register and
// the embedded stylesheet under /static/.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.page(h.views.Home))
	r.Get("/rewilding", h.page(h.views.Retreat))
	r.Get("/rewilding/register", h.page(h.views.Register))
	r.Handle("/static/*", http.StripPrefix("/static/", h.views.Static()))

	r.NotFound(handler.Wrap(func(_ handler.Context, _ struct{}) handler.Response {
		return handler.TemplStatus(http.StatusNotFound, h.views.NotFound())
	}))

	return r
}

func (h *Handler) page(view func() templ.Component) http.HandlerFunc {
	return handler.Wrap(func(_ handler.Context, _ struct{}) handler.Response {
		return handler.Templ(view())
	}, handler.WithDecorators(handler.Recover[handler.Context, struct{}](h.log)))
}
