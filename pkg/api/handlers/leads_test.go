package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vivwell/api/ent"
	"github.com/vivwell/api/ent/enttest"
	"github.com/vivwell/api/pkg/attribution"
	"github.com/vivwell/api/pkg/cache"
	"github.com/vivwell/api/pkg/leadlifecycle"
	"github.com/vivwell/api/pkg/models"
	"github.com/vivwell/api/pkg/submissions"
)

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// setupLeadTest creates a test database with in-memory Redis and lead handler
func setupLeadTest(t *testing.T) (*ent.Client, *LeadHandler) {
	client := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	store := cache.NewStore(cacheClient)
	extractor := attribution.NewExtractor(store, 90*24*time.Hour, nil)
	gate := submissions.NewGate(store, 5*time.Minute, nil)

	submissionService := submissions.NewService(client, extractor, gate)
	lifecycleService := leadlifecycle.NewService(client)

	return client, NewLeadHandler(submissionService, lifecycleService)
}

func submitRequest(t *testing.T, handler *LeadHandler, body, userAgent string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("User-Agent", userAgent)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler.Submit(c))
	return rec
}

func TestSubmit(t *testing.T) {
	t.Run("valid submission returns 201 with score", func(t *testing.T) {
		_, handler := setupLeadTest(t)

		body := `{
			"first_name": "Dana",
			"last_name": "Rivera",
			"email": "dana@acme.com",
			"phone": "310-555-0134",
			"company": "Acme Corp",
			"service_type": "chair-massage",
			"event_date": "2026-10-05",
			"message": "We'd like recurring on-site wellness sessions for roughly 200 employees.",
			"page_url": "https://vivwell.co/contact?utm_source=linkedin&utm_medium=social&utm_campaign=holiday-wellness",
			"visitor_id": "vis-123"
		}`

		rec := submitRequest(t, handler, body, browserUA)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.LeadResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "dana@acme.com", resp.Email)
		assert.Equal(t, "linkedin", resp.UTMSource)
		assert.Equal(t, "new", resp.Status)
		assert.Equal(t, 80, resp.LeadScore)
		assert.Equal(t, 175.0, resp.ConversionValue)
	})

	t.Run("missing required fields returns 400", func(t *testing.T) {
		_, handler := setupLeadTest(t)

		rec := submitRequest(t, handler, `{"first_name": "Dana"}`, browserUA)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bot user agent returns 403 with generic refusal", func(t *testing.T) {
		db, handler := setupLeadTest(t)

		body := `{"first_name": "Link", "last_name": "Crawler", "email": "bot@example.com"}`
		rec := submitRequest(t, handler, body, "LinkedInBot/1.0 (compatible)")
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "not_allowed", resp.Error)

		count, err := db.Lead.Query().Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("repeat submission inside window returns 429", func(t *testing.T) {
		_, handler := setupLeadTest(t)

		body := `{"first_name": "Dana", "last_name": "Rivera", "email": "repeat@acme.com"}`
		rec := submitRequest(t, handler, body, browserUA)
		assert.Equal(t, http.StatusCreated, rec.Code)

		rec = submitRequest(t, handler, body, browserUA)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "too_many_submissions", resp.Error)
	})
}

func TestList(t *testing.T) {
	_, handler := setupLeadTest(t)

	// Seed two leads through the public endpoint
	for _, email := range []string{"a@acme.com", "b@other.com"} {
		body := `{"first_name": "Test", "last_name": "Lead", "email": "` + email + `"}`
		rec := submitRequest(t, handler, body, browserUA)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/leads?limit=50", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, handler.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LeadListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestGetByID(t *testing.T) {
	_, handler := setupLeadTest(t)

	body := `{"first_name": "Dana", "last_name": "Rivera", "email": "dana@acme.com"}`
	rec := submitRequest(t, handler, body, browserUA)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	e := echo.New()

	t.Run("existing lead", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(created.ID))
		require.NoError(t, handler.GetByID(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown lead returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99999")
		require.NoError(t, handler.GetByID(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateStatus(t *testing.T) {
	_, handler := setupLeadTest(t)

	body := `{"first_name": "Dana", "last_name": "Rivera", "email": "dana@acme.com"}`
	rec := submitRequest(t, handler, body, browserUA)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.LeadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status": "contacted"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(created.ID))
	c.Set("email", "admin@vivwell.co")
	require.NoError(t, handler.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp leadlifecycle.LeadStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "contacted", resp.Status)
}
