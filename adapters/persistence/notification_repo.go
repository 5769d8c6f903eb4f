package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushire/talent-hub/internal/domain/notification"
	"github.com/campushire/talent-hub/pkg/apperror"
	"github.com/campushire/talent-hub/pkg/logger"
)

type postgresNotificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresNotificationRepo(db *pgxpool.Pool, logger logger.Logger) notification.Repository {
	return &postgresNotificationRepo{db: db, logger: logger}
}

func (r *postgresNotificationRepo) Save(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_id, kind, message, created_at, read_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, n.ID, n.RecipientID, n.Kind, n.Message, n.CreatedAt, n.ReadAt)
	if err != nil {
		return apperror.NewInternal("failed to save notification", err)
	}
	return nil
}

func (r *postgresNotificationRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*notification.Notification, error) {
	query := `
		SELECT id, recipient_id, kind, message, created_at, read_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, apperror.NewInternal("failed to query notifications", err)
	}
	defer rows.Close()

	notifications := make([]*notification.Notification, 0)
	for rows.Next() {
		n := &notification.Notification{}
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Kind, &n.Message, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, apperror.NewInternal("failed to scan notification row", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating notification rows", err)
	}
	return notifications, nil
}

func (r *postgresNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, recipientID uuid.UUID) error {
	query := `UPDATE notifications SET read_at = NOW() WHERE id = $1 AND recipient_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, recipientID)
	if err != nil {
		return apperror.NewInternal("failed to mark notification read", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("notification", id.String())
	}
	return nil
}
