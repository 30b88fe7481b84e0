package pricing

import (
	"context"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/pkg/notify"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []notify.Notification
}

func (r *recordingNotifier) Dispatch(_ context.Context, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) kinds() []notify.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Kind, len(r.sent))
	for i, n := range r.sent {
		out[i] = n.Kind
	}
	return out
}

func sampleRequest() CreateProposalRequest {
	return CreateProposalRequest{
		CompanyName:        "Acme Corp",
		ContactName:        "Dana Rivera",
		ContactEmail:       "dana@acme.com",
		ServiceType:        "chair-massage",
		AppointmentCount:   40,
		RatePerAppointment: 95,
		DiscountPct:        10,
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		rate     float64
		discount float64
		want     float64
	}{
		{"no discount", 40, 95, 0, 3800},
		{"ten percent off", 40, 95, 10, 3420},
		{"rounds to cents", 3, 33.33, 0, 99.99},
		{"sub-cent rate", 1, 10.006, 0, 10.01},
		{"full discount", 40, 95, 100, 0},
		{"fractional discount rounds", 7, 149.99, 12.5, 918.69},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Total(tt.count, tt.rate, tt.discount))
		})
	}
}

func TestCreate(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, nil)

	resp, err := service.Create(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", resp.CompanyName)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, 3420.0, resp.Total)
	assert.Len(t, resp.ViewToken, 32)
}

func TestUpdate_Reprices(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, sampleRequest())
	require.NoError(t, err)

	newCount := 60
	updated, err := service.Update(ctx, created.ID, UpdateProposalRequest{AppointmentCount: &newCount})
	require.NoError(t, err)

	assert.Equal(t, 60, updated.AppointmentCount)
	assert.Equal(t, 95.0, updated.RatePerAppointment)
	assert.Equal(t, 5130.0, updated.Total)
}

func TestUpdate_LockedAfterApproval(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	service := NewService(db, notifier)
	ctx := context.Background()

	created, err := service.Create(ctx, sampleRequest())
	require.NoError(t, err)

	_, err = service.Send(ctx, created.ID)
	require.NoError(t, err)

	// Repricing a sent proposal is still allowed.
	newRate := 105.0
	_, err = service.Update(ctx, created.ID, UpdateProposalRequest{RatePerAppointment: &newRate})
	require.NoError(t, err)

	_, err = service.Approve(ctx, created.ViewToken)
	require.NoError(t, err)

	_, err = service.Update(ctx, created.ID, UpdateProposalRequest{RatePerAppointment: &newRate})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can no longer be repriced")
}

func TestSend(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	service := NewService(db, notifier)
	ctx := context.Background()

	created, err := service.Create(ctx, sampleRequest())
	require.NoError(t, err)

	sent, err := service.Send(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "sent", sent.Status)
	assert.Equal(t, []notify.Kind{notify.KindProposalEvent}, notifier.kinds())

	_, err = service.Send(ctx, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only draft proposals can be sent")
}

func TestView(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	service := NewService(db, notifier)
	ctx := context.Background()

	created, err := service.Create(ctx, sampleRequest())
	require.NoError(t, err)
	_, err = service.Send(ctx, created.ID)
	require.NoError(t, err)

	t.Run("first view stamps viewed", func(t *testing.T) {
		resp, err := service.View(ctx, created.ViewToken)
		require.NoError(t, err)
		assert.Equal(t, "viewed", resp.Status)

		p, err := db.Proposal.Get(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, p.ViewedAt)
		firstViewed := *p.ViewedAt

		// Subsequent views leave the stamp alone.
		_, err = service.View(ctx, created.ViewToken)
		require.NoError(t, err)

		p, err = db.Proposal.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, firstViewed, *p.ViewedAt)
	})

	t.Run("public response hides the view token", func(t *testing.T) {
		resp, err := service.View(ctx, created.ViewToken)
		require.NoError(t, err)
		assert.Empty(t, resp.ViewToken)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		_, err := service.View(ctx, "deadbeefdeadbeefdeadbeefdeadbeef")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "proposal not found")
	})
}

func TestApprove(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	service := NewService(db, notifier)
	ctx := context.Background()

	created, err := service.Create(ctx, sampleRequest())
	require.NoError(t, err)

	t.Run("drafts cannot be approved", func(t *testing.T) {
		_, err := service.Approve(ctx, created.ViewToken)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be approved")
	})

	t.Run("sent proposals can be approved", func(t *testing.T) {
		_, err := service.Send(ctx, created.ID)
		require.NoError(t, err)

		resp, err := service.Approve(ctx, created.ViewToken)
		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
		assert.Empty(t, resp.ViewToken)
	})
}

func TestMarkSignedAndPaid(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	service := NewService(db, notifier)
	ctx := context.Background()

	created, err := service.Create(ctx, sampleRequest())
	require.NoError(t, err)

	require.NoError(t, service.LinkSubmission(ctx, created.ID, "sub_123"))
	require.NoError(t, service.LinkInvoice(ctx, created.ID, "in_456"))

	signed, err := service.MarkSigned(ctx, "sub_123", "dana@acme.com")
	require.NoError(t, err)
	assert.Equal(t, "signed", string(signed.Status))

	paid, err := service.MarkPaid(ctx, "in_456", 3420)
	require.NoError(t, err)
	assert.Equal(t, "paid", string(paid.Status))

	assert.Equal(t, []notify.Kind{notify.KindAgreementSigned, notify.KindInvoicePaid}, notifier.kinds())

	_, err = service.MarkSigned(ctx, "sub_unknown", "x@y.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no proposal for submission")

	_, err = service.MarkPaid(ctx, "in_unknown", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no proposal for invoice")
}
