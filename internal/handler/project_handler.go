package handler

import (
	"net/http"

	"github.com/mmi-portfolio/backend/internal/service"
)

// ProjectHandler serves the portfolio listing.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/projects. Always 200; the service substitutes demo
// projects when the store is unavailable.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.projectService.List(r.Context()))
}
