package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func TestSwaggerDocServed(t *testing.T) {
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Swagger string `json:"swagger"`
		Info    struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "VivWell API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/api/v1/leads")
	assert.Contains(t, doc.Paths, "/api/v1/proposals/{id}/link-invoice")
	assert.Contains(t, doc.Paths, "/api/v1/webhooks/stripe")
}

func TestSwaggerUIServed(t *testing.T) {
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
