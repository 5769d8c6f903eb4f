package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/campushire/talent-hub/internal/domain/notification"
)

type NotificationUseCase struct {
	repo notification.Repository
}

func NewNotificationUseCase(r notification.Repository) *NotificationUseCase {
	return &NotificationUseCase{repo: r}
}

func (uc *NotificationUseCase) ListNotifications(ctx context.Context, recipientID uuid.UUID, page, limit int) ([]*notification.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	return uc.repo.ListByRecipient(ctx, recipientID, limit, offset)
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, recipientID uuid.UUID) error {
	return uc.repo.MarkRead(ctx, id, recipientID)
}
