package handler

import (
	"net/http"

	"github.com/mmi-portfolio/backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes bundles everything NewRouter wires.
type Routes struct {
	Handler  *Handler
	Projects *ProjectHandler
	Contact  *ContactHandler
	Metrics  *metrics.Metrics
	// Gatherer backs GET /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// NewRouter registers the API routes and wraps them in the middleware chain.
func NewRouter(rt Routes) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", rt.Handler.Root)
	mux.HandleFunc("GET /test", rt.Handler.Test)
	mux.HandleFunc("GET /api/projects", rt.Projects.List)
	mux.HandleFunc("POST /api/contact", rt.Contact.Submit)
	if rt.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(rt.Gatherer, promhttp.HandlerOpts{}))
	}

	return RequestLogger(rt.Metrics)(SecurityHeaders(CORS(mux)))
}
