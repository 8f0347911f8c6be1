package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/api/middleware"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/lifecycle"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
	"github.com/aaravmahajanofficial/local-commerce-platform/pkg/sendgrid"
	"github.com/google/uuid"
)

type NotificationService interface {
	NotifyShopNewOrder(ctx context.Context, recipient string, order *models.Order) error
	NotifyCustomerStatus(ctx context.Context, recipient string, order *models.Order) error
	ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService}
}

func (n *notificationService) NotifyShopNewOrder(ctx context.Context, recipient string, order *models.Order) error {

	var lines strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&lines, "- %s x%d %s: Rs %.2f\n", item.ProductName, item.Quantity, item.Unit, item.Subtotal)
	}

	content := fmt.Sprintf(
		"New order %s from %s (%s).\n\n%s\nTotal: Rs %.2f (cash on delivery)\nDeliver to: %s\n",
		order.OrderID, order.CustomerName, order.CustomerPhone, lines.String(), order.Total, order.DeliveryAddress,
	)

	return n.send(ctx, order.OrderID, &models.EmailNotificationRequest{
		To:      recipient,
		Subject: fmt.Sprintf("New order %s", order.OrderID),
		Content: content,
	})
}

func (n *notificationService) NotifyCustomerStatus(ctx context.Context, recipient string, order *models.Order) error {

	status := lifecycle.StatusText(order.Status)

	content := fmt.Sprintf("Your order %s from %s is now: %s.", order.OrderID, order.ShopName, status)
	if order.Status == models.OrderStatusRejected && order.RejectionReason != "" {
		content += fmt.Sprintf("\nReason: %s", order.RejectionReason)
	}

	return n.send(ctx, order.OrderID, &models.EmailNotificationRequest{
		To:      recipient,
		Subject: fmt.Sprintf("Order %s: %s", order.OrderID, status),
		Content: content,
	})
}

// send records the notification before delivery so failed sends stay visible to admins.
func (n *notificationService) send(ctx context.Context, orderID string, req *models.EmailNotificationRequest) error {

	logger := middleware.LoggerFromContext(ctx)

	notification := &models.Notification{
		ID:        uuid.New(),
		Type:      models.NotificationTypeEmail,
		Recipient: req.To,
		Subject:   req.Subject,
		Content:   req.Content,
		OrderID:   orderID,
		Status:    models.StatusPending,
	}

	req.OrderID = orderID

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		return errors.DatabaseError("Failed to create notification record").WithError(err)
	}

	if err := n.emailService.Send(ctx, req); err != nil {

		logger.Warn("Email delivery failed",
			slog.String("notificationId", notification.ID.String()),
			slog.String("error", err.Error()),
		)

		if updateErr := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, err.Error()); updateErr != nil {
			logger.Error("Failed to record notification failure", slog.String("error", updateErr.Error()))
		}

		return errors.ThirdPartyError("Failed to send email").WithError(err)
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		return errors.DatabaseError("Notification sent but failed to update its status").WithError(err)
	}

	return nil
}

func (n *notificationService) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, int, error) {

	page, size = normalizePage(page, size)

	notifications, total, err := n.repo.ListNotifications(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list notifications").WithError(err)
	}

	return notifications, total, nil
}
