package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailClient is the part of the SendGrid client the service uses.
type mailClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// EmailService handles sending emails via Twilio SendGrid
type EmailService struct {
	client   mailClient
	from     string
	fromName string
}

// NewEmailService creates a new email service instance
func NewEmailService(apiKey, fromEmail string) (*EmailService, error) {
	if apiKey == "" || fromEmail == "" {
		return nil, fmt.Errorf("missing SendGrid configuration")
	}

	return &EmailService{
		client:   sendgrid.NewSendClient(apiKey),
		from:     fromEmail,
		fromName: "Venra",
	}, nil
}

// SendEmail sends one message with a plain text and an HTML part.
func (s *EmailService) SendEmail(ctx context.Context, to, subject, text, html string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		subject,
		mail.NewEmail("", to),
		text,
		html,
	)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: %d", resp.StatusCode)
	}
	return nil
}
