package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mmi-portfolio/backend/internal/service"
)

// Diagnostics produces the GET /test report.
type Diagnostics interface {
	Report(ctx context.Context) service.Report
}

// Handler serves the service-level endpoints (root and diagnostics).
type Handler struct {
	diagnostics Diagnostics
}

func New(diagnostics Diagnostics) *Handler {
	return &Handler{diagnostics: diagnostics}
}

// CORS allows every origin, method and header. A request Origin is echoed
// back so that credentialed requests work.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		} else {
			h.Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == http.MethodOptions {
			h.Set("Access-Control-Allow-Methods", "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT")
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			} else {
				h.Set("Access-Control-Allow-Headers", "*")
			}
			h.Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
