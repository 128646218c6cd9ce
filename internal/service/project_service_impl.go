package service

import (
	"context"
	"log/slog"

	"github.com/mmi-portfolio/backend/internal/metrics"
	"github.com/mmi-portfolio/backend/internal/model"
	"github.com/mmi-portfolio/backend/internal/repository"
)

// ProjectListLimit caps how many projects are read from the store.
const ProjectListLimit = 50

// ProjectServiceImpl is the production ProjectService.
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
	metrics     *metrics.Metrics
}

// NewProjectService creates a ProjectServiceImpl. m may be nil.
func NewProjectService(projectRepo repository.ProjectRepository, m *metrics.Metrics) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo, metrics: m}
}

// List returns stored projects, or the demo set on any read error.
func (s *ProjectServiceImpl) List(ctx context.Context) []*model.Project {
	projects, err := s.projectRepo.List(ctx, ProjectListLimit)
	if err != nil {
		slog.WarnContext(ctx, "serving demo projects", "error", err)
		s.metrics.ProjectFallback()
		return DemoProjects()
	}
	return projects
}
