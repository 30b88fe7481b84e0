package leadlifecycle

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/ent/lead"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func createTestLead(t *testing.T, db *ent.Client, email string) *ent.Lead {
	l, err := db.Lead.Create().
		SetFirstName("Dana").
		SetLastName("Rivera").
		SetEmail(email).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

func TestUpdateLeadStatus(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	t.Run("progresses through the standard pipeline", func(t *testing.T) {
		l := createTestLead(t, db, "pipeline@acme.com")
		assert.Equal(t, lead.StatusNew, l.Status)

		for _, next := range []string{"contacted", "followed_up", "closed"} {
			resp, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", l.ID, UpdateStatusRequest{Status: next})
			require.NoError(t, err)
			assert.Equal(t, next, resp.Status)
		}

		updated, err := db.Lead.Get(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, lead.StatusClosed, updated.Status)
	})

	t.Run("records a history row with old and new status", func(t *testing.T) {
		l := createTestLead(t, db, "history@acme.com")

		_, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", l.ID, UpdateStatusRequest{
			Status: "contacted",
			Reason: "called and left a voicemail",
		})
		require.NoError(t, err)

		history, err := service.GetLeadStatusHistory(ctx, l.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)

		assert.Equal(t, l.ID, history[0].LeadID)
		assert.Equal(t, "admin@vivwell.co", history[0].ChangedBy)
		require.NotNil(t, history[0].OldStatus)
		assert.Equal(t, "new", *history[0].OldStatus)
		assert.Equal(t, "contacted", history[0].NewStatus)
		require.NotNil(t, history[0].Reason)
		assert.Equal(t, "called and left a voicemail", *history[0].Reason)
	})

	t.Run("same status is a no-op and leaves no history", func(t *testing.T) {
		l := createTestLead(t, db, "noop@acme.com")

		resp, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", l.ID, UpdateStatusRequest{Status: "new"})
		require.NoError(t, err)
		assert.Equal(t, "new", resp.Status)

		history, err := service.GetLeadStatusHistory(ctx, l.ID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("moving backward is allowed", func(t *testing.T) {
		l := createTestLead(t, db, "backward@acme.com")

		_, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", l.ID, UpdateStatusRequest{Status: "closed"})
		require.NoError(t, err)

		resp, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", l.ID, UpdateStatusRequest{Status: "contacted"})
		require.NoError(t, err)
		assert.Equal(t, "contacted", resp.Status)

		history, err := service.GetLeadStatusHistory(ctx, l.ID)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("unknown lead returns not found", func(t *testing.T) {
		_, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", 99999, UpdateStatusRequest{Status: "contacted"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lead not found")
	})
}

func TestGetLeadStatusHistory_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	l := createTestLead(t, db, "ordering@acme.com")

	for _, next := range []string{"contacted", "followed_up"} {
		_, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", l.ID, UpdateStatusRequest{Status: next})
		require.NoError(t, err)
	}

	history, err := service.GetLeadStatusHistory(ctx, l.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "followed_up", history[0].NewStatus)
	assert.Equal(t, "contacted", history[1].NewStatus)
}

func TestGetLeadStatusHistory_LeadNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)

	_, err := service.GetLeadStatusHistory(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lead not found")
}

func TestGetStatusCounts(t *testing.T) {
	db := setupTestDB(t)
	service := NewService(db)
	ctx := context.Background()

	a := createTestLead(t, db, "a@acme.com")
	b := createTestLead(t, db, "b@acme.com")
	createTestLead(t, db, "c@acme.com")

	_, err := service.UpdateLeadStatus(ctx, "admin@vivwell.co", a.ID, UpdateStatusRequest{Status: "contacted"})
	require.NoError(t, err)
	_, err = service.UpdateLeadStatus(ctx, "admin@vivwell.co", b.ID, UpdateStatusRequest{Status: "closed"})
	require.NoError(t, err)

	counts, err := service.GetStatusCounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, counts["new"])
	assert.Equal(t, 1, counts["contacted"])
	assert.Equal(t, 0, counts["followed_up"])
	assert.Equal(t, 1, counts["closed"])
}
