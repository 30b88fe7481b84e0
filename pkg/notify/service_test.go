package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/pkg/metrics"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

type capturedRequest struct {
	body      []byte
	signature string
	event     string
}

func TestDispatch_DeliversSignedPayload(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var mu sync.Mutex
	var got []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		got = append(got, capturedRequest{
			body:      body,
			signature: r.Header.Get("X-VivWell-Signature"),
			event:     r.Header.Get("X-VivWell-Event"),
		})
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	service := NewService(db)
	ep, err := service.CreateEndpoint(ctx, srv.URL, []string{string(KindLead)}, "crm sync")
	require.NoError(t, err)

	service.Dispatch(ctx, NewLead(LeadEvent{
		ID:        3,
		Name:      "Dana Rivera",
		Email:     "dana@acme.com",
		LeadScore: 80,
	}))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 1)

	assert.Equal(t, string(KindLead), got[0].event)
	assert.True(t, VerifySignature(got[0].body, got[0].signature, ep.Secret))

	var p struct {
		Event string          `json:"event"`
		Data  json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(got[0].body, &p))
	assert.Equal(t, "lead.created", p.Event)

	var lead LeadEvent
	require.NoError(t, json.Unmarshal(p.Data, &lead))
	assert.Equal(t, "Dana Rivera", lead.Name)

	// Counters recorded.
	updated, err := db.NotificationEndpoint.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.SuccessCount)
	assert.Zero(t, updated.FailureCount)
}

func TestDispatch_SkipsUnsubscribedKinds(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	service := NewService(db)
	_, err := service.CreateEndpoint(ctx, srv.URL, []string{string(KindInvoicePaid)}, "")
	require.NoError(t, err)

	service.Dispatch(ctx, NewLead(LeadEvent{ID: 1, Name: "X", Email: "x@x.com"}))

	assert.Zero(t, hits)
}

func TestDispatch_SkipsInactiveEndpoints(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	service := NewService(db)
	ep, err := service.CreateEndpoint(ctx, srv.URL, []string{string(KindLead)}, "")
	require.NoError(t, err)

	inactive := false
	_, err = service.UpdateEndpoint(ctx, ep.ID, nil, nil, &inactive)
	require.NoError(t, err)

	service.Dispatch(ctx, NewLead(LeadEvent{ID: 1, Name: "X", Email: "x@x.com"}))

	assert.Zero(t, hits)
}

func TestDispatch_FailureCountedNotFatal(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	service := NewService(db)
	ep, err := service.CreateEndpoint(ctx, srv.URL, []string{string(KindLead)}, "")
	require.NoError(t, err)

	failuresBefore := testutil.ToFloat64(metrics.NotificationFailuresTotal)

	// Must not panic or return anything; failures are swallowed.
	service.Dispatch(ctx, NewLead(LeadEvent{ID: 1, Name: "X", Email: "x@x.com"}))

	updated, err := db.NotificationEndpoint.Get(ctx, ep.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.FailureCount)
	assert.Zero(t, updated.SuccessCount)
	assert.Equal(t, failuresBefore+1, testutil.ToFloat64(metrics.NotificationFailuresTotal))
}

func TestSignVerify(t *testing.T) {
	payload := []byte(`{"event":"lead.created"}`)

	sig := Sign(payload, "secret-1")

	assert.True(t, VerifySignature(payload, sig, "secret-1"))
	assert.False(t, VerifySignature(payload, sig, "secret-2"))
	assert.False(t, VerifySignature([]byte("tampered"), sig, "secret-1"))
	assert.False(t, VerifySignature(payload, "deadbeef", "secret-1"))
}

func TestEndpointCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	service := NewService(db)

	ep, err := service.CreateEndpoint(ctx, "https://crm.example.com/hook", []string{string(KindLead), string(KindInvoicePaid)}, "main CRM")
	require.NoError(t, err)
	assert.NotEmpty(t, ep.Secret)
	assert.True(t, ep.Active)

	list, err := service.ListEndpoints(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	newURL := "https://crm.example.com/hook2"
	updated, err := service.UpdateEndpoint(ctx, ep.ID, &newURL, []string{string(KindLead)}, nil)
	require.NoError(t, err)
	assert.Equal(t, newURL, updated.URL)
	assert.Equal(t, []string{string(KindLead)}, updated.Kinds)
	assert.Equal(t, ep.Secret, updated.Secret, "secret survives updates")

	require.NoError(t, service.DeleteEndpoint(ctx, ep.ID))

	err = service.DeleteEndpoint(ctx, ep.ID)
	assert.EqualError(t, err, "notification endpoint not found")
}

func TestChatClients(t *testing.T) {
	var slackBody, discordBody map[string]string

	slackSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&slackBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer slackSrv.Close()

	discordSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&discordBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer discordSrv.Close()

	ctx := context.Background()

	slack := NewSlackClient(slackSrv.URL)
	require.NoError(t, slack.SendMessage(ctx, "hello sales"))
	assert.Equal(t, "hello sales", slackBody["text"])
	assert.Equal(t, "slack", slack.Name())

	discord := NewDiscordClient(discordSrv.URL)
	require.NoError(t, discord.SendMessage(ctx, "hello sales"))
	assert.Equal(t, "hello sales", discordBody["content"])
	assert.Equal(t, "discord", discord.Name())
}
