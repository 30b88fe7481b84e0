package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/vivwell/api/pkg/api/errors"
	"github.com/vivwell/api/pkg/models"
	"github.com/vivwell/api/pkg/pricing"
)

// ProposalHandler handles proposal CRUD for the sales team plus the public
// client-facing view and approval endpoints.
type ProposalHandler struct {
	pricing   *pricing.Service
	validator *validator.Validate
}

// NewProposalHandler creates a new proposal handler.
func NewProposalHandler(pricingService *pricing.Service) *ProposalHandler {
	return &ProposalHandler{
		pricing:   pricingService,
		validator: validator.New(),
	}
}

// Create godoc
// @Summary Create a proposal draft
// @Tags Proposals
// @Accept json
// @Produce json
// @Param request body pricing.CreateProposalRequest true "Proposal"
// @Success 201 {object} pricing.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/proposals [post]
func (h *ProposalHandler) Create(c echo.Context) error {
	var req pricing.CreateProposalRequest
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

	resp, err := h.pricing.Create(ctx, req)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary List proposals
// @Tags Proposals
// @Produce json
// @Success 200 {array} pricing.ProposalResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/proposals [get]
func (h *ProposalHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.pricing.List(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a proposal
// @Tags Proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} pricing.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/proposals/{id} [get]
func (h *ProposalHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_proposal_id",
			Message: "Proposal ID must be a valid number",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.pricing.Get(ctx, id)
	if err != nil {
		return apierrors.NotFoundError(c, "Proposal")
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Reprice a proposal
// @Description Update appointment count, rate or discount on a draft or sent proposal. The total is recalculated.
// @Tags Proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param request body pricing.UpdateProposalRequest true "Fields to update"
// @Success 200 {object} pricing.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/proposals/{id} [patch]
func (h *ProposalHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_proposal_id",
			Message: "Proposal ID must be a valid number",
		})
	}

	var req pricing.UpdateProposalRequest
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

	resp, err := h.pricing.Update(ctx, id, req)
	if err != nil {
		if err.Error() == "proposal not found" {
			return apierrors.NotFoundError(c, "Proposal")
		}
		if strings.Contains(err.Error(), "can no longer be repriced") {
			return c.JSON(http.StatusConflict, models.ErrorResponse{
				Error:   "proposal_locked",
				Message: err.Error(),
			})
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Send godoc
// @Summary Send a proposal
// @Description Mark a draft proposal as sent and notify the sales channels
// @Tags Proposals
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} pricing.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/proposals/{id}/send [post]
func (h *ProposalHandler) Send(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_proposal_id",
			Message: "Proposal ID must be a valid number",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.pricing.Send(ctx, id)
	if err != nil {
		if err.Error() == "proposal not found" {
			return apierrors.NotFoundError(c, "Proposal")
		}
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "invalid_state",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// LinkInvoiceRequest attaches a Stripe invoice to a proposal.
type LinkInvoiceRequest struct {
	InvoiceID string `json:"invoice_id" validate:"required,max=100"`
}

// LinkSubmissionRequest attaches a DocuSeal submission to a proposal.
type LinkSubmissionRequest struct {
	SubmissionID string `json:"submission_id" validate:"required,max=100"`
}

// LinkInvoice godoc
// @Summary Link a Stripe invoice
// @Description Attach a Stripe invoice ID so the invoice.paid webhook can mark this proposal paid
// @Tags Proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param request body LinkInvoiceRequest true "Invoice reference"
// @Success 200 {object} pricing.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/proposals/{id}/link-invoice [post]
func (h *ProposalHandler) LinkInvoice(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_proposal_id",
			Message: "Proposal ID must be a valid number",
		})
	}

	var req LinkInvoiceRequest
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

	if err := h.pricing.LinkInvoice(ctx, id, req.InvoiceID); err != nil {
		if err.Error() == "proposal not found" {
			return apierrors.NotFoundError(c, "Proposal")
		}
		return apierrors.DatabaseError(c, err)
	}

	resp, err := h.pricing.Get(ctx, id)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// LinkSubmission godoc
// @Summary Link a DocuSeal submission
// @Description Attach a DocuSeal submission ID so the form.completed webhook can mark this proposal signed
// @Tags Proposals
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param request body LinkSubmissionRequest true "Submission reference"
// @Success 200 {object} pricing.ProposalResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/proposals/{id}/link-submission [post]
func (h *ProposalHandler) LinkSubmission(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_proposal_id",
			Message: "Proposal ID must be a valid number",
		})
	}

	var req LinkSubmissionRequest
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

	if err := h.pricing.LinkSubmission(ctx, id, req.SubmissionID); err != nil {
		if err.Error() == "proposal not found" {
			return apierrors.NotFoundError(c, "Proposal")
		}
		return apierrors.DatabaseError(c, err)
	}

	resp, err := h.pricing.Get(ctx, id)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// View godoc
// @Summary View a proposal by token
// @Description Public client view. The first view moves the proposal from sent to viewed.
// @Tags Proposals
// @Produce json
// @Param token path string true "View token"
// @Success 200 {object} pricing.ProposalResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/proposals/view/{token} [get]
func (h *ProposalHandler) View(c echo.Context) error {
	token := c.Param("token")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.pricing.View(ctx, token)
	if err != nil {
		return apierrors.NotFoundError(c, "Proposal")
	}

	return c.JSON(http.StatusOK, resp)
}

// Approve godoc
// @Summary Approve a proposal by token
// @Description Public client approval of a sent or viewed proposal
// @Tags Proposals
// @Produce json
// @Param token path string true "View token"
// @Success 200 {object} pricing.ProposalResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/proposals/{token}/approve [post]
func (h *ProposalHandler) Approve(c echo.Context) error {
	token := c.Param("token")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.pricing.Approve(ctx, token)
	if err != nil {
		if err.Error() == "proposal not found" {
			return apierrors.NotFoundError(c, "Proposal")
		}
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "invalid_state",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}
