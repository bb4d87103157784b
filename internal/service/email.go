package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	client *sendgrid.Client
	from   *mail.Email
}

// NewEmailService builds the SendGrid-backed confirmation mailer
func NewEmailService(apiKey, fromAddress, fromName string) EmailService {
	return &emailService{
		client: sendgrid.NewSendClient(apiKey),
		from:   mail.NewEmail(fromName, fromAddress),
	}
}

func (s *emailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(s.from, subject, to, body, "")

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("SendGrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}

func (s *emailService) SendAgreementConfirmation(ctx context.Context, toEmail, customerName, agreementNumber string) error {
	subject := fmt.Sprintf("Rental agreement %s confirmed", agreementNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour rental agreement %s has been created. You can review the details at any of our rental desks.\n\nThank you for renting with us.",
		customerName, agreementNumber,
	)
	return s.send(ctx, toEmail, customerName, subject, body)
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, toEmail, customerName, reservationNumber string) error {
	subject := fmt.Sprintf("Reservation %s confirmed", reservationNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour reservation %s is confirmed. Please bring your license and payment card at pickup.\n\nThank you for renting with us.",
		customerName, reservationNumber,
	)
	return s.send(ctx, toEmail, customerName, subject, body)
}
