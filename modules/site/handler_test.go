package site_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/interalchemy/rewilding/modules/site"
)

type mountFunc func() http.Handler

func (f mountFunc) Handle() http.Handler { return f() }

func TestHandlerPages(t *testing.T) {
	t.Parallel()

	h := site.NewHandler(newViews(t), nil).Handle()

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{path: "/", status: http.StatusOK, contentType: "text/html", contains: "View Rewilding Landing Page"},
		{path: "/rewilding", status: http.StatusOK, contentType: "text/html", contains: "Choose Your Room Option"},
		{path: "/rewilding/register", status: http.StatusOK, contentType: "text/html", contains: "Registration Form"},
		{path: "/static/site.css", status: http.StatusOK, contentType: "text/css", contains: ".btn-primary"},
		{path: "/nope", status: http.StatusNotFound, contentType: "text/html", contains: "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestRouter(t *testing.T) {
	t.Parallel()

	registrationHit := mountFunc(func() http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	r := site.Router(site.RouterOptions{
		Pages:        site.NewHandler(newViews(t), nil),
		Registration: registrationHit,
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, site.RegisterPath, nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rewilding", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterWithoutParts(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	site.Router(site.RouterOptions{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
