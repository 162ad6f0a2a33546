package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type EmailClient interface {
	Send(ctx context.Context, to, subject, plainText, htmlContent string) error
}

type emailClient struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailClient(apiKey, fromEmail, fromName string) EmailClient {
	return &emailClient{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (e *emailClient) Send(ctx context.Context, to, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(e.fromName, e.fromEmail)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), plainText, htmlContent)

	resp, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
