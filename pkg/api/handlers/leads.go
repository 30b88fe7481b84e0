package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/vivwell/api/pkg/api/errors"
	"github.com/vivwell/api/pkg/leadlifecycle"
	"github.com/vivwell/api/pkg/models"
	"github.com/vivwell/api/pkg/submissions"
)

// LeadHandler handles lead submission and the sales dashboard endpoints.
type LeadHandler struct {
	submissions *submissions.Service
	lifecycle   *leadlifecycle.Service
	validator   *validator.Validate
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(submissionService *submissions.Service, lifecycleService *leadlifecycle.Service) *LeadHandler {
	return &LeadHandler{
		submissions: submissionService,
		lifecycle:   lifecycleService,
		validator:   validator.New(),
	}
}

// Submit godoc
// @Summary Submit a lead
// @Description Accept a contact-form or lead-ad submission, run attribution and scoring, persist the lead
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body models.SubmitLeadRequest true "Lead submission"
// @Success 201 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 429 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/leads [post]
func (h *LeadHandler) Submit(c echo.Context) error {
	var req models.SubmitLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	lead, err := h.submissions.Submit(ctx, req, c.Request().UserAgent(), c.RealIP())
	if err != nil {
		switch err {
		case submissions.ErrBotRejected:
			// Keep the refusal generic so automation can't probe the filter
			return c.JSON(http.StatusForbidden, models.ErrorResponse{
				Error:   "not_allowed",
				Message: "Submission not allowed",
			})
		case submissions.ErrRateLimited:
			return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error:   "too_many_submissions",
				Message: "Please wait a few minutes before submitting again",
			})
		default:
			return apierrors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, lead)
}

// List godoc
// @Summary List leads
// @Description List leads for the sales dashboard with status, source and score filters
// @Tags Leads
// @Produce json
// @Param status query string false "Status filter" Enums(new, contacted, followed_up, closed)
// @Param source query string false "UTM source filter"
// @Param min_score query int false "Minimum lead score"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} models.LeadListResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	var req models.LeadListRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid query parameters",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.submissions.List(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary Get a lead
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} models.LeadResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/leads/{id} [get]
func (h *LeadHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	lead, err := h.submissions.GetByID(ctx, id)
	if err != nil {
		return apierrors.NotFoundError(c, "Lead")
	}

	return c.JSON(http.StatusOK, lead)
}

// UpdateStatus godoc
// @Summary Update lead status
// @Description Move a lead through new → contacted → followed_up → closed
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param request body leadlifecycle.UpdateStatusRequest true "New status"
// @Success 200 {object} leadlifecycle.LeadStatusResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/leads/{id}/status [patch]
func (h *LeadHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	var req leadlifecycle.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	changedBy, _ := c.Get("email").(string)
	resp, err := h.lifecycle.UpdateLeadStatus(ctx, changedBy, id, req)
	if err != nil {
		if err.Error() == "lead not found" {
			return apierrors.NotFoundError(c, "Lead")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetStatusHistory godoc
// @Summary Get lead status history
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {array} leadlifecycle.StatusHistoryResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/leads/{id}/status-history [get]
func (h *LeadHandler) GetStatusHistory(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_lead_id",
			Message: "Lead ID must be a valid number",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	history, err := h.lifecycle.GetLeadStatusHistory(ctx, id)
	if err != nil {
		if err.Error() == "lead not found" {
			return apierrors.NotFoundError(c, "Lead")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, history)
}

// GetStatusCounts godoc
// @Summary Count leads by status
// @Tags Leads
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/leads/status-counts [get]
func (h *LeadHandler) GetStatusCounts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	counts, err := h.lifecycle.GetStatusCounts(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, counts)
}
