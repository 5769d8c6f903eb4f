package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID  `json:"id"`
	RecipientID uuid.UUID  `json:"recipient_id"`
	Kind        string     `json:"kind"`
	Message     string     `json:"message"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at"`
}

type Repository interface {
	Save(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, recipientID uuid.UUID) error
}
