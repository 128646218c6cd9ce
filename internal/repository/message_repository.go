package repository

import (
	"context"
	"fmt"

	"github.com/mmi-portfolio/backend/internal/model"
)

// MessageCollection is the collection receiving contact messages.
const MessageCollection = "message"

// MessageRepository persists contact messages.
type MessageRepository interface {
	Save(ctx context.Context, msg *model.Message) error
}

// DocMessageRepository writes messages to a DocumentStore.
type DocMessageRepository struct {
	store DocumentStore
}

// NewMessageRepository creates a DocMessageRepository. store may be nil.
func NewMessageRepository(store DocumentStore) *DocMessageRepository {
	return &DocMessageRepository{store: store}
}

var _ MessageRepository = (*DocMessageRepository)(nil)

// Save inserts msg as a new document.
func (r *DocMessageRepository) Save(ctx context.Context, msg *model.Message) error {
	if r.store == nil {
		return ErrNoStore
	}
	doc := Document{
		"name":       msg.Name,
		"email":      msg.Email,
		"message":    msg.Message,
		"source":     nil,
		"created_at": msg.CreatedAt,
	}
	if msg.Source != nil {
		doc["source"] = *msg.Source
	}
	if err := r.store.Insert(ctx, MessageCollection, doc); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}
