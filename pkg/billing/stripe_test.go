package billing

import (
	"context"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/pkg/pricing"
)

const testWebhookSecret = "whsec_test_secret"

func setupService(t *testing.T) (*Service, *pricing.Service, *ent.Client) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	pricingService := pricing.NewService(db, nil)
	return NewService(pricingService, "sk_test_123", testWebhookSecret), pricingService, db
}

// signPayload builds a Stripe-Signature header the same way Stripe does.
func signPayload(payload []byte, secret string) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func eventPayload(eventType, invoiceJSON string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test",
		"object": "event",
		"api_version": %q,
		"type": %q,
		"data": {"object": %s}
	}`, stripe.APIVersion, eventType, invoiceJSON))
}

func TestHandleWebhook_SignatureVerification(t *testing.T) {
	service, _, _ := setupService(t)
	payload := eventPayload("invoice.created", `{"id":"in_123"}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		err := service.HandleWebhook(context.Background(), payload, signPayload(payload, testWebhookSecret))
		require.NoError(t, err)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		err := service.HandleWebhook(context.Background(), payload, signPayload(payload, "whsec_other"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signature verification failed")
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		err := service.HandleWebhook(context.Background(), payload, "")
		require.Error(t, err)
	})
}

func TestHandleWebhook_InvoicePaid(t *testing.T) {
	service, pricingService, db := setupService(t)
	ctx := context.Background()

	created, err := pricingService.Create(ctx, pricing.CreateProposalRequest{
		CompanyName:        "Acme Corp",
		ContactEmail:       "dana@acme.com",
		ServiceType:        "chair-massage",
		AppointmentCount:   40,
		RatePerAppointment: 95,
		DiscountPct:        10,
	})
	require.NoError(t, err)
	require.NoError(t, pricingService.LinkInvoice(ctx, created.ID, "in_456"))

	payload := eventPayload("invoice.paid", `{"id":"in_456","amount_paid":342000}`)
	err = service.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret))
	require.NoError(t, err)

	p, err := db.Proposal.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", string(p.Status))
}

func TestHandleWebhook_InvoicePaidWithoutProposal(t *testing.T) {
	service, _, _ := setupService(t)

	// Invoices outside the proposal flow are logged and acknowledged.
	payload := eventPayload("invoice.paid", `{"id":"in_unlinked","amount_paid":5000}`)
	err := service.HandleWebhook(context.Background(), payload, signPayload(payload, testWebhookSecret))
	require.NoError(t, err)
}

func TestHandleWebhook_PaymentFailedOnlyLogs(t *testing.T) {
	service, pricingService, db := setupService(t)
	ctx := context.Background()

	created, err := pricingService.Create(ctx, pricing.CreateProposalRequest{
		CompanyName:        "Acme Corp",
		ContactEmail:       "dana@acme.com",
		ServiceType:        "chair-massage",
		AppointmentCount:   40,
		RatePerAppointment: 95,
	})
	require.NoError(t, err)
	require.NoError(t, pricingService.LinkInvoice(ctx, created.ID, "in_789"))

	payload := eventPayload("invoice.payment_failed", `{"id":"in_789","customer_email":"dana@acme.com"}`)
	err = service.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret))
	require.NoError(t, err)

	p, err := db.Proposal.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", string(p.Status))
}
