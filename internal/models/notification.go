package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeEmail NotificationType = "email"
)

type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
)

type Notification struct {
	ID        uuid.UUID          `json:"id"`
	Type      NotificationType   `json:"type"`
	Recipient string             `json:"recipient"`
	Subject   string             `json:"subject,omitempty"`
	Content   string             `json:"content"`
	OrderID   string             `json:"order_id,omitempty"`
	Status    NotificationStatus `json:"status"`
	Error     string             `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	SentAt    *time.Time         `json:"sent_at,omitempty"`
}

type EmailNotificationRequest struct {
	To          string   `json:"to" validate:"required,email"`
	Subject     string   `json:"subject" validate:"required"`
	Content     string   `json:"content" validate:"required"`
	HTMLContent string   `json:"html_content,omitempty"`
	CC          []string `json:"cc,omitempty" validate:"omitempty,dive,email"`
	BCC         []string `json:"bcc,omitempty" validate:"omitempty,dive,email"`
	OrderID     string   `json:"order_id,omitempty"`
}
