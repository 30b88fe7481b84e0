package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	_ "github.com/mattn/go-sqlite3"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/pkg/billing"
	"github.com/vivwell/api/pkg/esign"
	"github.com/vivwell/api/pkg/pricing"
)

const (
	stripeTestSecret   = "whsec_test_secret"
	docusealTestSecret = "docuseal-test-secret"
)

// setupProposalTest creates a test database with the proposal handler plus the
// webhook consumers that react to linked invoices and submissions.
func setupProposalTest(t *testing.T) (*ent.Client, *ProposalHandler, *billing.Service, *esign.Service) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	pricingService := pricing.NewService(client, nil)
	handler := NewProposalHandler(pricingService)
	billingService := billing.NewService(pricingService, "sk_test_123", stripeTestSecret)
	esignService := esign.NewService(pricingService, docusealTestSecret)

	return client, handler, billingService, esignService
}

func createProposal(t *testing.T, handler *ProposalHandler) pricing.ProposalResponse {
	e := echo.New()
	body := `{
		"company_name": "Acme Corp",
		"contact_email": "dana@acme.com",
		"service_type": "chair-massage",
		"appointment_count": 40,
		"rate_per_appointment": 95,
		"discount_pct": 10
	}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler.Create(e.NewContext(req, rec)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp pricing.ProposalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func postLink(t *testing.T, handler echo.HandlerFunc, proposalID int, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(proposalID))
	require.NoError(t, handler(c))
	return rec
}

func stripeSignature(payload []byte, secret string) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func docusealSignature(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestLinkInvoice(t *testing.T) {
	_, handler, _, _ := setupProposalTest(t)
	created := createProposal(t, handler)

	t.Run("links and echoes the invoice ID", func(t *testing.T) {
		rec := postLink(t, handler.LinkInvoice, created.ID, `{"invoice_id": "in_456"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp pricing.ProposalResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "in_456", resp.StripeInvoiceID)
	})

	t.Run("missing invoice_id rejected", func(t *testing.T) {
		rec := postLink(t, handler.LinkInvoice, created.ID, `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown proposal returns 404", func(t *testing.T) {
		rec := postLink(t, handler.LinkInvoice, 99999, `{"invoice_id": "in_456"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLinkSubmission(t *testing.T) {
	_, handler, _, _ := setupProposalTest(t)
	created := createProposal(t, handler)

	rec := postLink(t, handler.LinkSubmission, created.ID, `{"submission_id": "8841"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp pricing.ProposalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "8841", resp.DocusealSubmissionID)
}

// TestLinkedWebhookLifecycle walks the billing path an admin actually uses:
// link the invoice and submission over HTTP, then let the provider webhooks
// move the proposal to signed and paid.
func TestLinkedWebhookLifecycle(t *testing.T) {
	db, handler, billingService, esignService := setupProposalTest(t)
	ctx := context.Background()
	created := createProposal(t, handler)

	rec := postLink(t, handler.LinkSubmission, created.ID, `{"submission_id": "8841"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = postLink(t, handler.LinkInvoice, created.ID, `{"invoice_id": "in_456"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	signPayload := []byte(`{"event_type":"form.completed","data":{"submission_id":8841,"email":"dana@acme.com"}}`)
	require.NoError(t, esignService.HandleWebhook(ctx, signPayload, docusealSignature(signPayload, docusealTestSecret)))

	p, err := db.Proposal.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "signed", string(p.Status))

	payPayload := []byte(fmt.Sprintf(`{
		"id": "evt_test",
		"object": "event",
		"api_version": %q,
		"type": "invoice.paid",
		"data": {"object": {"id":"in_456","amount_paid":342000}}
	}`, stripe.APIVersion))
	require.NoError(t, billingService.HandleWebhook(ctx, payPayload, stripeSignature(payPayload, stripeTestSecret)))

	p, err = db.Proposal.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", string(p.Status))
}
