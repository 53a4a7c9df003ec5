package utils

import (
	"fmt"
	"log"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes an EmailService. Returns nil when no API token
// is configured, in which case callers skip sending.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		log.Println("POSTMARK_API_TOKEN not set; email notifications disabled")
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendWelcomeEmail greets a newly registered user.
func (es *EmailService) SendWelcomeEmail(toEmail, name string) error {
	subject := "Welcome to FashionStore"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your account has been created. Happy shopping!",
		name,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendOrderConfirmationEmail confirms a paid order to the user.
func (es *EmailService) SendOrderConfirmationEmail(toEmail, name, orderID string, total float64) error {
	subject := "Order Confirmation - FashionStore"
	htmlContent := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your purchase! Your order <strong>%s</strong> has been paid successfully.<br><br>Total Amount: <strong>$%.2f</strong><br><br>Thank you for shopping with us!",
		name, orderID, total,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
