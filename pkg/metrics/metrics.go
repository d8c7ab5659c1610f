// Package metrics exposes Prometheus instrumentation for the site: HTTP
// traffic per route, registration outcomes and email deliveries.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rewilding"

// Registry owns the collectors and the registry they are exposed from.
type Registry struct {
	reg *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpLatency   *prometheus.HistogramVec
	registrations *prometheus.CounterVec
	emailSends    *prometheus.CounterVec
	emailLatency  *prometheus.HistogramVec
}

// New registers every collector, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
			[]string{"route", "method", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "http_request_duration_seconds",
				Help:    "HTTP request duration seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "registrations_total", Help: "Registration submissions by outcome."},
			[]string{"outcome"}, // invalid|trapped|unconfigured|sent|failed
		),
		emailSends: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "email_sends_total", Help: "Outbound emails by tag and outcome."},
			[]string{"tag", "outcome"},
		),
		emailLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace, Name: "email_send_duration_seconds",
				Help:    "Email provider call duration seconds.",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"tag"},
		),
	}
	r.reg.MustRegister(
		r.httpRequests, r.httpLatency, r.registrations, r.emailSends, r.emailLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests and pushers.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) ObserveHTTP(route, method string, status int, dur time.Duration) {
	r.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func (r *Registry) ObserveRegistration(outcome string) {
	r.registrations.WithLabelValues(outcome).Inc()
}

func (r *Registry) ObserveEmailSend(tag, outcome string, elapsed time.Duration) {
	r.emailSends.WithLabelValues(tag, outcome).Inc()
	r.emailLatency.WithLabelValues(tag).Observe(elapsed.Seconds())
}
