package esign

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	"github.com/vivwell/api/pkg/metrics"
	"github.com/vivwell/api/pkg/pricing"
)

// Service consumes DocuSeal webhook events for agreement signatures.
type Service struct {
	pricingService *pricing.Service
	webhookSecret  string
}

// NewService creates a new e-signature service.
func NewService(pricingService *pricing.Service, webhookSecret string) *Service {
	return &Service{
		pricingService: pricingService,
		webhookSecret:  webhookSecret,
	}
}

// event is the subset of the DocuSeal webhook payload this side reads.
type event struct {
	EventType string `json:"event_type"`
	Data      struct {
		SubmissionID json.Number `json:"submission_id"`
		Email        string      `json:"email"`
		Status       string      `json:"status"`
	} `json:"data"`
}

// HandleWebhook verifies and processes one DocuSeal webhook delivery. The
// signature is hex HMAC-SHA256 of the raw body with the shared secret.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if !s.verifySignature(payload, signature) {
		return fmt.Errorf("webhook signature verification failed")
	}

	var ev event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return fmt.Errorf("failed to unmarshal webhook payload: %w", err)
	}

	log.Printf("📨 DocuSeal webhook received: %s", ev.EventType)
	metrics.WebhookEventsTotal.WithLabelValues("docuseal", ev.EventType).Inc()

	switch ev.EventType {
	case "form.completed":
		return s.handleFormCompleted(ctx, ev)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", ev.EventType)
	}

	return nil
}

func (s *Service) handleFormCompleted(ctx context.Context, ev event) error {
	submissionID := ev.Data.SubmissionID.String()
	if submissionID == "" {
		return fmt.Errorf("form.completed without submission_id")
	}

	p, err := s.pricingService.MarkSigned(ctx, submissionID, ev.Data.Email)
	if err != nil {
		log.Printf("⚠️  form.completed for submission %s not applied: %v", submissionID, err)
		return nil
	}

	log.Printf("✅ Proposal %d marked signed (submission %s)", p.ID, submissionID)
	return nil
}

func (s *Service) verifySignature(payload []byte, signature string) bool {
	if s.webhookSecret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.webhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expected))
}
