// Package sendgrid delivers order emails through the SendGrid v3 mail API.
package sendgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/local-commerce-platform/internal/config"
	"github.com/aaravmahajanofficial/local-commerce-platform/internal/models"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrNotConfigured = errors.New("sendgrid api key is not set")

const orderCategory = "order"

type EmailService interface {
	Send(ctx context.Context, req *models.EmailNotificationRequest) error
}

type Option func(*sg.Client)

// WithBaseURL points the client at another host, e.g. a local stub.
func WithBaseURL(url string) Option {
	return func(c *sg.Client) {
		c.Request.BaseURL = url
	}
}

type emailService struct {
	client *sg.Client
	from   *mail.Email
	apiKey string
}

func NewEmailService(cfg config.SendGrid, opts ...Option) EmailService {

	client := sg.NewSendClient(cfg.APIKey)
	for _, opt := range opts {
		opt(client)
	}

	return &emailService{
		client: client,
		from:   mail.NewEmail(cfg.FromName, cfg.FromEmail),
		apiKey: cfg.APIKey,
	}
}

// Send fails fast with ErrNotConfigured when no API key is set so the
// notification is still recorded, as failed.
func (e *emailService) Send(ctx context.Context, req *models.EmailNotificationRequest) error {

	if e.apiKey == "" {
		return ErrNotConfigured
	}

	resp, err := e.client.SendWithContext(ctx, buildMessage(e.from, req))
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected the message, status code: %d", resp.StatusCode)
	}

	return nil
}

func buildMessage(from *mail.Email, req *models.EmailNotificationRequest) *mail.SGMailV3 {

	p := mail.NewPersonalization()
	p.Subject = req.Subject
	p.AddTos(mail.NewEmail("", req.To))
	for _, addr := range req.CC {
		p.AddCCs(mail.NewEmail("", addr))
	}
	for _, addr := range req.BCC {
		p.AddBCCs(mail.NewEmail("", addr))
	}

	msg := mail.NewV3Mail()
	msg.SetFrom(from)
	msg.AddPersonalizations(p)
	msg.AddContent(mail.NewContent("text/plain", req.Content))
	if req.HTMLContent != "" {
		msg.AddContent(mail.NewContent("text/html", req.HTMLContent))
	}

	if req.OrderID != "" {
		msg.AddCategories(orderCategory)
		msg.SetCustomArg("order_id", req.OrderID)
	}

	return msg
}
