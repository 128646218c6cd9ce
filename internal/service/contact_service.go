package service

import (
	"context"

	"github.com/mmi-portfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores msg. A *model.ValidationError means the
	// store was never touched.
	Submit(ctx context.Context, msg *model.Message) error
}
