package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Contact submission outcomes.
const (
	ContactStored  = "stored"
	ContactNote    = "note"
	ContactInvalid = "invalid"
)

// Metrics holds the service's Prometheus collectors. A nil *Metrics is a
// valid no-op.
type Metrics struct {
	requests           *prometheus.CounterVec
	duration           *prometheus.HistogramVec
	projectFallbacks   prometheus.Counter
	contactSubmissions *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		projectFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portfolio_project_fallbacks_total",
			Help: "Project listings served from demo data",
		}),
		contactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact submissions by outcome",
		}, []string{"result"}),
	}
	reg.MustRegister(m.requests, m.duration, m.projectFallbacks, m.contactSubmissions)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ProjectFallback counts a listing answered with demo projects.
func (m *Metrics) ProjectFallback() {
	if m == nil {
		return
	}
	m.projectFallbacks.Inc()
}

// ContactSubmission counts a contact submission with the given outcome.
func (m *Metrics) ContactSubmission(result string) {
	if m == nil {
		return
	}
	m.contactSubmissions.WithLabelValues(result).Inc()
}
