package sms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/vivwell/api/pkg/models"
)

// ErrInvalidPhoneNumber is returned when phone number format is invalid
var ErrInvalidPhoneNumber = errors.New("invalid phone number format")

// SMSProvider defines the interface for SMS delivery providers (Twilio, etc.)
type SMSProvider interface {
	SendSMS(ctx context.Context, to, from, body string) (*SMSResult, error)
}

// SMSResult holds the result of sending an SMS
type SMSResult struct {
	SID         string
	Status      string
	DateCreated time.Time
}

// Service sends the high-score lead alerts to the sales phone.
type Service struct {
	provider   SMSProvider
	fromNumber string
	toNumber   string
}

// NewService creates a new SMS service. A nil provider disables sending
// and logs the message instead.
func NewService(provider SMSProvider, fromNumber, toNumber string) *Service {
	return &Service{
		provider:   provider,
		fromNumber: fromNumber,
		toNumber:   toNumber,
	}
}

// SendHighScoreAlert texts a short lead summary to the sales number.
func (s *Service) SendHighScoreAlert(ctx context.Context, lead models.LeadResponse) error {
	body := fmt.Sprintf("🎯 Hot lead: %s %s (%s), score %d, est. $%.0f. Source: %s",
		lead.FirstName, lead.LastName, lead.Company, lead.LeadScore,
		lead.ConversionValue, lead.UTMSource)

	if s.provider == nil || s.toNumber == "" {
		log.Printf("📱 [SMS] To: %s — %s", s.toNumber, body)
		return nil
	}

	// Twilio requires E.164 numbers
	if !strings.HasPrefix(s.toNumber, "+") {
		return ErrInvalidPhoneNumber
	}

	result, err := s.provider.SendSMS(ctx, s.toNumber, s.fromNumber, body)
	if err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	log.Printf("📱 SMS alert sent (sid=%s, status=%s)", result.SID, result.Status)
	return nil
}
