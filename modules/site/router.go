package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterPath is where the registration endpoint is mounted.
const RegisterPath = "/api/rewilding/register"

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects what the site router serves. Each part is
// optional and only mounted when set.
type RouterOptions struct {
	Pages        Mountable
	Registration Mountable
}

// Router assembles the public site.
//
// Example:
//
//	views, _ := site.NewViews(content)
//	svc := registration.NewService(mailCfg, sender)
//
//	r := chi.NewRouter()
//	r.Mount("/", site.Router(site.RouterOptions{
//	    Pages:        site.NewHandler(views, log),
//	    Registration: registration.NewHandler(svc, views.RegistrationViews(), nil),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Registration != nil {
		r.Mount(RegisterPath, opts.Registration.Handle())
	}
	if opts.Pages != nil {
		r.Mount("/", opts.Pages.Handle())
	}

	return r
}
