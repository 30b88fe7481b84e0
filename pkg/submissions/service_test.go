package submissions

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/pkg/attribution"
	"github.com/vivwell/api/pkg/models"
	"github.com/vivwell/api/pkg/notify"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15) AppleWebKit/537.36"

type pipelineFixture struct {
	db      *ent.Client
	service *Service
	store   *fakeStore
	clock   *fakeClock
}

func setupPipeline(t *testing.T) *pipelineFixture {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	store := newFakeStore()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	extractor := attribution.NewExtractor(store, 90*24*time.Hour, clock.Now)
	gate := NewGate(store, 5*time.Minute, clock.Now)

	return &pipelineFixture{
		db:      client,
		service: NewService(client, extractor, gate),
		store:   store,
		clock:   clock,
	}
}

func TestSubmit_FullPipeline(t *testing.T) {
	f := setupPipeline(t)
	ctx := context.Background()

	req := models.SubmitLeadRequest{
		FirstName:   "Dana",
		LastName:    "Rivera",
		Email:       "dana@acme.com",
		Phone:       "(310) 555-0134",
		Company:     "Acme Corp",
		ServiceType: "chair-massage",
		EventDate:   "2026-12-18",
		Message:     strings.Repeat("We would love massages for our holiday party. ", 2),
		PageURL:     "https://vivwell.co/?utm_source=linkedin&utm_medium=cpc&utm_campaign=holiday-2025",
		VisitorID:   "v1",
	}

	resp, err := f.service.Submit(ctx, req, browserUA, "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, 80, resp.LeadScore)
	assert.Equal(t, 175.0, resp.ConversionValue)
	assert.Equal(t, "linkedin", resp.UTMSource)
	assert.Equal(t, "holiday-2025", resp.UTMCampaign)
	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, "+13105550134", resp.Phone, "phone normalized to E.164")
	assert.Equal(t, "2026-12-18", resp.EventDate)

	// Persisted row matches the response.
	l, err := f.db.Lead.Get(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, l.LeadScore)
	assert.Equal(t, browserUA, l.UserAgent)
}

func TestSubmit_BotRejectedBeforePersistence(t *testing.T) {
	f := setupPipeline(t)
	ctx := context.Background()

	req := models.SubmitLeadRequest{
		FirstName: "Not",
		LastName:  "Real",
		Email:     "bot@example.com",
	}

	_, err := f.service.Submit(ctx, req, "LinkedInBot/1.0", "203.0.113.7")
	assert.ErrorIs(t, err, ErrBotRejected)

	count, err := f.db.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "nothing persisted for bot traffic")

	// The cool-down was never armed either.
	ok, err := f.service.gate.Allow(ctx, "bot@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSubmit_CooldownRejectsSecondSubmission(t *testing.T) {
	f := setupPipeline(t)
	ctx := context.Background()

	req := models.SubmitLeadRequest{
		FirstName: "Sam",
		LastName:  "Ortiz",
		Email:     "sam@acme.com",
	}

	_, err := f.service.Submit(ctx, req, browserUA, "203.0.113.7")
	require.NoError(t, err)

	f.clock.Advance(2 * time.Minute)

	_, err = f.service.Submit(ctx, req, browserUA, "203.0.113.7")
	assert.ErrorIs(t, err, ErrRateLimited)

	count, err := f.db.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// After the window the same email goes through again.
	f.clock.Advance(4 * time.Minute)

	_, err = f.service.Submit(ctx, req, browserUA, "203.0.113.7")
	require.NoError(t, err)
}

func TestSubmit_StoredAttributionAppliedOnPlainVisit(t *testing.T) {
	f := setupPipeline(t)
	ctx := context.Background()

	// A tagged visit stores the blob through the extractor.
	_, err := f.service.extractor.Resolve(ctx, "v9",
		"https://vivwell.co/?utm_source=facebook&utm_medium=paid&utm_campaign=spring", "")
	require.NoError(t, err)

	req := models.SubmitLeadRequest{
		FirstName: "Ana",
		LastName:  "Lopez",
		Email:     "ana@globex.com",
		PageURL:   "https://vivwell.co/contact",
		VisitorID: "v9",
	}

	resp, err := f.service.Submit(ctx, req, browserUA, "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, "facebook", resp.UTMSource)
	assert.Equal(t, "paid", resp.UTMMedium)
	assert.Equal(t, "spring", resp.UTMCampaign)
}

func TestSubmit_ReferrerFallback(t *testing.T) {
	f := setupPipeline(t)

	req := models.SubmitLeadRequest{
		FirstName: "Kim",
		LastName:  "Park",
		Email:     "kim@initech.com",
		PageURL:   "https://vivwell.co/contact",
		Referrer:  "https://www.google.com/search?q=corporate+wellness",
		VisitorID: "v2",
	}

	resp, err := f.service.Submit(context.Background(), req, browserUA, "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, "google", resp.UTMSource)
	assert.Equal(t, "referral", resp.UTMMedium)
}

func TestSubmit_GateStoreFailureFailsOpen(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	// Attribution has a healthy store; the gate's store errors out.
	okStore := newFakeStore()
	brokenStore := newFakeStore()
	brokenStore.err = assert.AnError

	extractor := attribution.NewExtractor(okStore, 90*24*time.Hour, nil)
	gate := NewGate(brokenStore, 5*time.Minute, nil)
	service := NewService(client, extractor, gate)

	req := models.SubmitLeadRequest{
		FirstName: "Lee",
		LastName:  "Chen",
		Email:     "lee@hooli.com",
	}

	resp, err := service.Submit(context.Background(), req, browserUA, "203.0.113.7")
	require.NoError(t, err, "an unreachable gate store must not lose the lead")
	assert.NotZero(t, resp.ID)
}

func TestSubmit_VisitorIDFallsBackToClientIP(t *testing.T) {
	f := setupPipeline(t)
	ctx := context.Background()

	// Tagged visit keyed by IP (no visitor ID sent).
	first := models.SubmitLeadRequest{
		FirstName: "Jo",
		LastName:  "Diaz",
		Email:     "jo@acme.com",
		PageURL:   "https://vivwell.co/?utm_source=instagram",
	}
	_, err := f.service.Submit(ctx, first, browserUA, "198.51.100.9")
	require.NoError(t, err)

	// Later plain submission from the same IP picks the blob up.
	second := models.SubmitLeadRequest{
		FirstName: "Mo",
		LastName:  "Diaz",
		Email:     "mo@acme.com",
		PageURL:   "https://vivwell.co/contact",
	}
	resp, err := f.service.Submit(ctx, second, browserUA, "198.51.100.9")
	require.NoError(t, err)

	assert.Equal(t, "instagram", resp.UTMSource)
}

// recordingNotifier captures dispatched notifications.
type recordingNotifier struct {
	mu   sync.Mutex
	seen []notify.Notification
	done chan struct{}
}

func (r *recordingNotifier) Dispatch(ctx context.Context, n notify.Notification) {
	r.mu.Lock()
	r.seen = append(r.seen, n)
	r.mu.Unlock()
	close(r.done)
}

func TestSubmit_FanoutNotifies(t *testing.T) {
	f := setupPipeline(t)

	rec := &recordingNotifier{done: make(chan struct{})}
	f.service.WithNotifier(rec)

	req := models.SubmitLeadRequest{
		FirstName: "Dana",
		LastName:  "Rivera",
		Email:     "dana@acme.com",
	}

	_, err := f.service.Submit(context.Background(), req, browserUA, "203.0.113.7")
	require.NoError(t, err)

	select {
	case <-rec.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification fanout never fired")
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.seen, 1)
	assert.Equal(t, notify.KindLead, rec.seen[0].Kind)
}

func TestList_Filters(t *testing.T) {
	f := setupPipeline(t)
	ctx := context.Background()

	seed := []struct {
		email  string
		source string
		score  int
	}{
		{"a@x.com", "linkedin", 80},
		{"b@x.com", "linkedin", 30},
		{"c@x.com", "google", 70},
	}
	for _, s := range seed {
		_, err := f.db.Lead.Create().
			SetFirstName("T").
			SetLastName("User").
			SetEmail(s.email).
			SetUtmSource(s.source).
			SetLeadScore(s.score).
			Save(ctx)
		require.NoError(t, err)
	}

	resp, err := f.service.List(ctx, models.LeadListRequest{Source: "linkedin"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total)

	resp, err = f.service.List(ctx, models.LeadListRequest{MinScore: 60})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pagination.Total)

	resp, err = f.service.List(ctx, models.LeadListRequest{Source: "linkedin", MinScore: 60})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Pagination.Total)
	assert.Equal(t, "a@x.com", resp.Data[0].Email)
}

func TestGetByID_NotFound(t *testing.T) {
	f := setupPipeline(t)

	_, err := f.service.GetByID(context.Background(), 9999)
	assert.EqualError(t, err, "lead not found")
}
