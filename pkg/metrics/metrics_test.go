package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interalchemy/rewilding/pkg/metrics"
)

func scrape(t *testing.T, reg *metrics.Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	return string(body)
}

func TestRegistryHandler(t *testing.T) {
	t.Parallel()

	reg := metrics.New()
	reg.ObserveRegistration("sent")
	reg.ObserveEmailSend("registration-host", "sent", 20*time.Millisecond)

	out := scrape(t, reg)
	assert.Contains(t, out, `rewilding_registrations_total{outcome="sent"} 1`)
	assert.Contains(t, out, `rewilding_email_sends_total{outcome="sent",tag="registration-host"} 1`)
	assert.Contains(t, out, "rewilding_email_send_duration_seconds")
	assert.Contains(t, out, "go_goroutines")
}

func TestRegistriesAreIndependent(t *testing.T) {
	t.Parallel()

	a, b := metrics.New(), metrics.New()
	a.ObserveRegistration("invalid")

	count, err := testutil.GatherAndCount(b.Gatherer(), "rewilding_registrations_total")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	t.Parallel()

	reg := metrics.New()
	r := chi.NewRouter()
	r.Use(reg.Middleware)
	r.Get("/pages/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/implicit", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/pages/a", "/pages/b", "/implicit", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := scrape(t, reg)
	assert.Contains(t, out, `rewilding_http_requests_total{method="GET",route="/pages/{slug}",status="418"} 2`)
	assert.Contains(t, out, `rewilding_http_requests_total{method="GET",route="/implicit",status="200"} 1`)
	assert.Contains(t, out, `status="404"`)
}
