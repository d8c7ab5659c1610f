package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/interalchemy/rewilding/handler"
	"github.com/interalchemy/rewilding/modules/registration"
)

// DefaultScript is the Datastar client bundle loaded by every page.
const DefaultScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.1/bundles/datastar.js"

// Fallback error copy when a failure carries no message of its own.
const genericError = "Something went wrong. Please try again."

var (
	//go:embed templates/*.html
	templateFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// Option is one selectable value of a form control.
type Option struct {
	Value string
	Label string
}

type page struct {
	Title    string
	Content  *Content
	Script   string
	Year     int
	Rooms    []Option
	Payments []Option

	Newsletter []Option
	Whatsapp   []Option
}

type errorFragment struct {
	Message string
	Issues  []handler.Issue
}

type sectionTitle struct{ Eyebrow, Title, Subtitle string }

type formField struct {
	Label, Name, Type, Placeholder string
	Required                       bool
}

type choiceField struct {
	Label, Name string
	Options     []Option
}

var funcs = template.FuncMap{
	"section": func(eyebrow, title, subtitle string) sectionTitle {
		return sectionTitle{Eyebrow: eyebrow, Title: title, Subtitle: subtitle}
	},
	"field": func(label, name, typ, placeholder string, required bool) formField {
		return formField{Label: label, Name: name, Type: typ, Placeholder: placeholder, Required: required}
	},
	"choice": func(label, name string, opts []Option) choiceField {
		return choiceField{Label: label, Name: name, Options: opts}
	},
}

// Views renders the site pages and the registration fragments.
type Views struct {
	content   *Content
	script    string
	now       func() time.Time
	pages     map[string]*template.Template
	fragments *template.Template
}

// ViewOption configures Views.
type ViewOption func(*Views)

// WithScript overrides the Datastar bundle URL. An empty src drops the
// script tag.
func WithScript(src string) ViewOption {
	return func(v *Views) { v.script = src }
}

// WithClock sets the clock used for the footer year.
func WithClock(now func() time.Time) ViewOption {
	return func(v *Views) {
		if now != nil {
			v.now = now
		}
	}
}

var pageNames = []string{"home", "retreat", "register", "notfound"}

// NewViews parses the embedded templates for content.
func NewViews(content *Content, opts ...ViewOption) (*Views, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: nil content", ErrInvalidContent)
	}
	v := &Views{
		content: content,
		script:  DefaultScript,
		now:     time.Now,
		pages:   make(map[string]*template.Template, len(pageNames)),
	}
	for _, opt := range opts {
		opt(v)
	}

	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("site: parse %s: %w", name, err)
		}
		v.pages[name] = t.Lookup("layout")
	}

	fragments, err := template.New("fragments").Funcs(funcs).ParseFS(templateFS, "templates/fragments.html")
	if err != nil {
		return nil, fmt.Errorf("site: parse fragments: %w", err)
	}
	v.fragments = fragments

	return v, nil
}

func (v *Views) page(name, title string) page {
	p := page{
		Title:   v.content.Brand.Title,
		Content: v.content,
		Script:  v.script,
		Year:    v.now().Year(),
	}
	if title != "" {
		p.Title = title + " | " + v.content.Brand.Title
	}
	if name == "register" {
		p.Rooms = roomOptions()
		p.Payments = paymentOptions()
		p.Newsletter = []Option{{"yes", "Yes, I would love updates"}, {"no", "No, thank you"}}
		p.Whatsapp = []Option{{"yes", "Yes"}, {"no", "No"}}
	}
	return p
}

func (v *Views) render(name, title string) templ.Component {
	return templ.FromGoHTML(v.pages[name], v.page(name, title))
}

func (v *Views) Home() templ.Component     { return v.render("home", "") }
func (v *Views) Retreat() templ.Component  { return v.render("retreat", v.content.Event.Title) }
func (v *Views) Register() templ.Component { return v.render("register", "Registration") }
func (v *Views) NotFound() templ.Component { return v.render("notfound", "Not found") }

// RegistrationSuccess replaces the form once a registration went through.
func (v *Views) RegistrationSuccess() templ.Component {
	return templ.FromGoHTML(v.fragments.Lookup("registration-success"), v.page("", ""))
}

// RegistrationError is shown above the submit button.
func (v *Views) RegistrationError(e handler.ErrorView) templ.Component {
	msg := e.Message
	if msg == "" {
		msg = genericError
	}
	return templ.FromGoHTML(v.fragments.Lookup("registration-error"), errorFragment{Message: msg, Issues: e.Issues})
}

// RegistrationViews wires the fragments into the registration endpoint.
func (v *Views) RegistrationViews() registration.Views {
	return registration.Views{
		Success: v.RegistrationSuccess,
		Error:   v.RegistrationError,
	}
}

// Static serves the embedded stylesheet.
func (v *Views) Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServerFS(sub)
}

// Check renders every page to make sure content and templates agree.
func (v *Views) Check(ctx context.Context) error {
	components := []templ.Component{v.Home(), v.Retreat(), v.Register(), v.NotFound(), v.RegistrationSuccess()}
	for _, c := range components {
		if err := c.Render(ctx, io.Discard); err != nil {
			return fmt.Errorf("site: render: %w", err)
		}
	}
	return nil
}

func roomOptions() []Option {
	opts := make([]Option, 0, len(registration.RoomOptions()))
	for _, o := range registration.RoomOptions() {
		opts = append(opts, Option{Value: string(o), Label: o.Label()})
	}
	return opts
}

func paymentOptions() []Option {
	opts := make([]Option, 0, len(registration.PaymentMethods()))
	for _, m := range registration.PaymentMethods() {
		opts = append(opts, Option{Value: string(m), Label: m.Label()})
	}
	return opts
}
