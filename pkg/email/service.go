package email

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/vivwell/api/pkg/models"
)

// Service sends transactional email through SendGrid. With no API key
// configured it logs the email instead, which is what you want in
// development.
type Service struct {
	client     *sendgrid.Client
	fromEmail  string
	fromName   string
	salesEmail string
}

// NewService creates a new email service.
func NewService(apiKey, fromEmail, fromName, salesEmail string) *Service {
	s := &Service{
		fromEmail:  fromEmail,
		fromName:   fromName,
		salesEmail: salesEmail,
	}

	if apiKey != "" {
		s.client = sendgrid.NewSendClient(apiKey)
		log.Println("✅ SendGrid email service initialized")
	} else {
		log.Println("ℹ️  SendGrid disabled (no API key), emails will be logged")
	}

	return s
}

// SendLeadConfirmation sends the thank-you email to the person who
// submitted the form.
func (s *Service) SendLeadConfirmation(ctx context.Context, toEmail, toName string) error {
	subject := "Thanks for reaching out to VivWell"
	plain := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thanks for your interest in VivWell corporate wellness. A member of our "+
			"team will get back to you within one business day.\n\n"+
			"— The VivWell Team",
		toName)

	return s.send(ctx, toEmail, toName, subject, plain)
}

// SendLeadAlert sends the internal new-lead summary to the sales inbox.
func (s *Service) SendLeadAlert(ctx context.Context, lead models.LeadResponse) error {
	subject := fmt.Sprintf("New lead: %s %s (score %d)", lead.FirstName, lead.LastName, lead.LeadScore)
	plain := fmt.Sprintf(
		"Name: %s %s\n"+
			"Email: %s\n"+
			"Phone: %s\n"+
			"Company: %s\n"+
			"Service: %s\n"+
			"Source: %s / %s\n"+
			"Campaign: %s\n"+
			"Score: %d\n"+
			"Est. value: $%.0f\n",
		lead.FirstName, lead.LastName, lead.Email, lead.Phone, lead.Company,
		lead.ServiceType, lead.UTMSource, lead.UTMMedium, lead.UTMCampaign,
		lead.LeadScore, lead.ConversionValue)

	return s.send(ctx, s.salesEmail, "VivWell Sales", subject, plain)
}

func (s *Service) send(ctx context.Context, toEmail, toName, subject, plain string) error {
	if s.client == nil {
		log.Printf("📧 [EMAIL] To: %s <%s>", toName, toEmail)
		log.Printf("   Subject: %s", subject)
		log.Printf("   Body: %s", plain)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmailPlainText(from, subject, to, plain)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	return nil
}
