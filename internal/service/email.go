package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"shopbook-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour bookkeeping account is ready. You can start recording receipts, transactions and customer dues right away.\n\nBest regards,\nThe Shopbook Team", name)
	return s.send(email, name, "Welcome to Shopbook", body)
}

func (s *emailService) SendDueReminder(ctx context.Context, email, ownerName string, rec *domain.DueRecord) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nA payment of %s from %s for %s was expected by %s and is still outstanding.\n\nBest regards,\nThe Shopbook Team",
		ownerName,
		formatCents(rec.AmountDueCents),
		rec.CustomerName,
		rec.ProductOrdered,
		rec.ExpectedPaymentDate,
	)
	subject := fmt.Sprintf("Payment overdue from %s", rec.CustomerName)
	return s.send(email, ownerName, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
