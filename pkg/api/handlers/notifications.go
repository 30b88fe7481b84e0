package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/vivwell/api/ent"
	apierrors "github.com/vivwell/api/pkg/api/errors"
	"github.com/vivwell/api/pkg/models"
	"github.com/vivwell/api/pkg/notify"
)

// NotificationHandler manages the generic webhook endpoints that receive
// lead and proposal events.
type NotificationHandler struct {
	notify    *notify.Service
	validator *validator.Validate
}

// NewNotificationHandler creates a new notification endpoint handler.
func NewNotificationHandler(notifyService *notify.Service) *NotificationHandler {
	return &NotificationHandler{
		notify:    notifyService,
		validator: validator.New(),
	}
}

// CreateEndpointRequest registers a new notification endpoint.
type CreateEndpointRequest struct {
	URL         string   `json:"url" validate:"required,url"`
	Kinds       []string `json:"kinds" validate:"required,min=1,dive,oneof=lead.created agreement.signed invoice.paid proposal.event"`
	Description string   `json:"description" validate:"omitempty,max=500"`
}

// UpdateEndpointRequest updates an endpoint. Nil fields are left unchanged.
type UpdateEndpointRequest struct {
	URL    *string  `json:"url" validate:"omitempty,url"`
	Kinds  []string `json:"kinds" validate:"omitempty,min=1,dive,oneof=lead.created agreement.signed invoice.paid proposal.event"`
	Active *bool    `json:"active"`
}

// EndpointResponse represents a notification endpoint. The signing secret is
// only included in the create response.
type EndpointResponse struct {
	ID              int      `json:"id"`
	URL             string   `json:"url"`
	Kinds           []string `json:"kinds"`
	Description     string   `json:"description,omitempty"`
	Active          bool     `json:"active"`
	Secret          string   `json:"secret,omitempty"`
	SuccessCount    int      `json:"success_count"`
	FailureCount    int      `json:"failure_count"`
	LastTriggeredAt string   `json:"last_triggered_at,omitempty"`
	CreatedAt       string   `json:"created_at"`
}

func toEndpointResponse(ep *ent.NotificationEndpoint, includeSecret bool) EndpointResponse {
	resp := EndpointResponse{
		ID:           ep.ID,
		URL:          ep.URL,
		Kinds:        ep.Kinds,
		Description:  ep.Description,
		Active:       ep.Active,
		SuccessCount: ep.SuccessCount,
		FailureCount: ep.FailureCount,
		CreatedAt:    ep.CreatedAt.Format(time.RFC3339),
	}
	if includeSecret {
		resp.Secret = ep.Secret
	}
	if !ep.LastTriggeredAt.IsZero() {
		resp.LastTriggeredAt = ep.LastTriggeredAt.Format(time.RFC3339)
	}
	return resp
}

// Create godoc
// @Summary Register a notification endpoint
// @Description Register a webhook URL for lead and proposal events. The signing secret is returned once.
// @Tags Notifications
// @Accept json
// @Produce json
// @Param request body CreateEndpointRequest true "Endpoint"
// @Success 201 {object} EndpointResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notification-endpoints [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req CreateEndpointRequest
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

	ep, err := h.notify.CreateEndpoint(ctx, req.URL, req.Kinds, req.Description)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusCreated, toEndpointResponse(ep, true))
}

// List godoc
// @Summary List notification endpoints
// @Tags Notifications
// @Produce json
// @Success 200 {array} EndpointResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notification-endpoints [get]
func (h *NotificationHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	endpoints, err := h.notify.ListEndpoints(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	resp := make([]EndpointResponse, len(endpoints))
	for i, ep := range endpoints {
		resp[i] = toEndpointResponse(ep, false)
	}

	return c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary Update a notification endpoint
// @Tags Notifications
// @Accept json
// @Produce json
// @Param id path int true "Endpoint ID"
// @Param request body UpdateEndpointRequest true "Fields to update"
// @Success 200 {object} EndpointResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notification-endpoints/{id} [patch]
func (h *NotificationHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_endpoint_id",
			Message: "Endpoint ID must be a valid number",
		})
	}

	var req UpdateEndpointRequest
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

	ep, err := h.notify.UpdateEndpoint(ctx, id, req.URL, req.Kinds, req.Active)
	if err != nil {
		if err.Error() == "notification endpoint not found" {
			return apierrors.NotFoundError(c, "Notification endpoint")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, toEndpointResponse(ep, false))
}

// Delete godoc
// @Summary Delete a notification endpoint
// @Tags Notifications
// @Produce json
// @Param id path int true "Endpoint ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notification-endpoints/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_endpoint_id",
			Message: "Endpoint ID must be a valid number",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.notify.DeleteEndpoint(ctx, id); err != nil {
		if err.Error() == "notification endpoint not found" {
			return apierrors.NotFoundError(c, "Notification endpoint")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Message: "Endpoint deleted"})
}
