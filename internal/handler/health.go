package handler

import "net/http"

// RootMessage is the fixed body of GET /.
const RootMessage = "MMI Portfolio API running"

type rootResponse struct {
	Message string `json:"message"`
}

// Root handles GET /. It never touches the store.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Message: RootMessage})
}

// Test handles GET /test, the store diagnostics report.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.diagnostics.Report(r.Context()))
}
