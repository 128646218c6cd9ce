package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mmi-portfolio/backend/internal/model"
)

// ProjectCollection is the collection holding seeded portfolio projects.
const ProjectCollection = "project"

// ProjectRepository reads portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, limit int) ([]*model.Project, error)
}

// DocProjectRepository reads projects from a DocumentStore.
type DocProjectRepository struct {
	store DocumentStore
}

// NewProjectRepository creates a DocProjectRepository. store may be nil,
// in which case every read fails with ErrNoStore.
func NewProjectRepository(store DocumentStore) *DocProjectRepository {
	return &DocProjectRepository{store: store}
}

var _ ProjectRepository = (*DocProjectRepository)(nil)

// List returns up to limit projects. A single document that does not match
// the project schema fails the whole read.
func (r *DocProjectRepository) List(ctx context.Context, limit int) ([]*model.Project, error) {
	if r.store == nil {
		return nil, ErrNoStore
	}
	docs, err := r.store.Find(ctx, ProjectCollection, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}
	projects := make([]*model.Project, 0, len(docs))
	for i, doc := range docs {
		p, err := decodeProject(doc)
		if err != nil {
			return nil, fmt.Errorf("project %d: %w", i, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func decodeProject(doc Document) (*model.Project, error) {
	delete(doc, "_id")
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var p model.Project
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Normalize()
	return &p, nil
}
