package esign

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/pkg/pricing"
)

const testSecret = "docuseal-test-secret"

func setupService(t *testing.T) (*Service, *pricing.Service, *ent.Client) {
	db := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { db.Close() })

	pricingService := pricing.NewService(db, nil)
	return NewService(pricingService, testSecret), pricingService, db
}

func sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHandleWebhook_SignatureVerification(t *testing.T) {
	service, _, _ := setupService(t)
	payload := []byte(`{"event_type":"form.viewed"}`)

	t.Run("valid signature accepted", func(t *testing.T) {
		err := service.HandleWebhook(context.Background(), payload, sign(payload, testSecret))
		require.NoError(t, err)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		err := service.HandleWebhook(context.Background(), payload, sign(payload, "other-secret"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "signature verification failed")
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		valid := sign(payload, testSecret)
		err := service.HandleWebhook(context.Background(), []byte(`{"event_type":"form.completed"}`), valid)
		require.Error(t, err)
	})

	t.Run("missing signature rejected", func(t *testing.T) {
		err := service.HandleWebhook(context.Background(), payload, "")
		require.Error(t, err)
	})
}

func TestHandleWebhook_FormCompleted(t *testing.T) {
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
	require.NoError(t, pricingService.LinkSubmission(ctx, created.ID, "8841"))

	payload := []byte(`{"event_type":"form.completed","data":{"submission_id":8841,"email":"dana@acme.com","status":"completed"}}`)
	err = service.HandleWebhook(ctx, payload, sign(payload, testSecret))
	require.NoError(t, err)

	p, err := db.Proposal.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "signed", string(p.Status))
}

func TestHandleWebhook_FormCompletedEdgeCases(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	t.Run("unknown submission is logged not fatal", func(t *testing.T) {
		payload := []byte(`{"event_type":"form.completed","data":{"submission_id":424242,"email":"x@y.com"}}`)
		err := service.HandleWebhook(ctx, payload, sign(payload, testSecret))
		require.NoError(t, err)
	})

	t.Run("missing submission_id errors", func(t *testing.T) {
		payload := []byte(`{"event_type":"form.completed","data":{"email":"x@y.com"}}`)
		err := service.HandleWebhook(ctx, payload, sign(payload, testSecret))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "without submission_id")
	})

	t.Run("malformed payload errors", func(t *testing.T) {
		payload := []byte(`{not json`)
		err := service.HandleWebhook(ctx, payload, sign(payload, testSecret))
		require.Error(t, err)
	})
}
