package service

import (
	"context"

	"github.com/mmi-portfolio/backend/internal/model"
)

// ProjectService serves the portfolio listing.
type ProjectService interface {
	// List never fails: when the store cannot be read it returns the demo
	// projects instead.
	List(ctx context.Context) []*model.Project
}
