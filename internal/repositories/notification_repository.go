package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/utils"
	"github.com/google/uuid"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMsg string) error
	ListNotifications(ctx context.Context, page int, size int) ([]*models.Notification, int, error)
}

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepo(db *sql.DB) NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO notifications (id, type, recipient, subject, content, order_id, status, error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`

	_, err := r.DB.ExecContext(dbCtx, query, notification.ID, notification.Type, notification.Recipient, notification.Subject,
		notification.Content, notification.OrderID, notification.Status, notification.Error)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil

}

// UpdateNotificationStatus records the delivery outcome. sent_at is stamped only on success.
func (r *notificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMsg string) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	now := time.Now()

	var sentAt *time.Time
	if status == models.StatusSent {
		sentAt = &now
	}

	query := `
		UPDATE notifications SET status = $1, error = $2, sent_at = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.DB.ExecContext(dbCtx, query, status, errorMsg, sentAt, now, id)

	if err != nil {
		return fmt.Errorf("failed to update the notification status: %w", err)
	}

	return expectOneRow(result)

}

func (r *notificationRepository) ListNotifications(ctx context.Context, page int, size int) ([]*models.Notification, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int
	countQuery := `SELECT COUNT(*) FROM notifications`
	err := r.DB.QueryRowContext(dbCtx, countQuery).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	offSet := (page - 1) * size

	query := `
		SELECT id, type, recipient, subject, content, order_id, status, error, sent_at, created_at, updated_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offSet)

	if err != nil {
		return nil, 0, fmt.Errorf("failed to query notifications: %w", err)
	}

	defer rows.Close()

	notifications := []*models.Notification{}

	for rows.Next() {

		var notification models.Notification

		err := rows.Scan(&notification.ID, &notification.Type, &notification.Recipient, &notification.Subject, &notification.Content,
			&notification.OrderID, &notification.Status, &notification.Error, &notification.SentAt, &notification.CreatedAt,
			&notification.UpdatedAt)

		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notifications: %w", err)
		}

		notifications = append(notifications, &notification)

	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating over the rows: %w", err)
	}

	return notifications, total, nil

}
