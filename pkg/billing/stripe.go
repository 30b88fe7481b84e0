package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/vivwell/api/pkg/metrics"
	"github.com/vivwell/api/pkg/pricing"
)

// Service consumes Stripe webhook events. Outbound Stripe orchestration
// (invoicing itself) happens in the Stripe dashboard; this side only reacts
// to payment outcomes.
type Service struct {
	pricingService *pricing.Service
	webhookSecret  string
}

// NewService creates a new billing service.
func NewService(pricingService *pricing.Service, secretKey, webhookSecret string) *Service {
	// Set Stripe API key
	stripe.Key = secretKey

	return &Service{
		pricingService: pricingService,
		webhookSecret:  webhookSecret,
	}
}

// HandleWebhook verifies and processes one Stripe webhook delivery.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	// Verify webhook signature
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	log.Printf("📨 Stripe webhook received: %s", event.Type)
	metrics.WebhookEventsTotal.WithLabelValues("stripe", string(event.Type)).Inc()

	switch event.Type {
	case "invoice.paid":
		return s.handleInvoicePaid(ctx, event)
	case "invoice.payment_failed":
		return s.handleInvoicePaymentFailed(ctx, event)
	default:
		log.Printf("⚠️  Unhandled webhook event type: %s", event.Type)
	}

	return nil
}

// handleInvoicePaid marks the linked proposal paid and fans out the
// invoice_paid notification.
func (s *Service) handleInvoicePaid(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	amountPaid := float64(invoice.AmountPaid) / 100

	p, err := s.pricingService.MarkPaid(ctx, invoice.ID, amountPaid)
	if err != nil {
		// An invoice without a linked proposal is fine: not every invoice
		// comes out of the proposal flow.
		log.Printf("⚠️  invoice.paid for %s not applied: %v", invoice.ID, err)
		return nil
	}

	log.Printf("✅ Proposal %d marked paid (invoice %s, $%.2f)", p.ID, invoice.ID, amountPaid)
	return nil
}

// handleInvoicePaymentFailed only logs; the proposal stays where it was and
// a human chases the payment.
func (s *Service) handleInvoicePaymentFailed(ctx context.Context, event stripe.Event) error {
	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		return fmt.Errorf("failed to unmarshal invoice: %w", err)
	}

	log.Printf("⚠️  Invoice payment failed: %s (customer %s)", invoice.ID, invoice.CustomerEmail)
	return nil
}
