package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vivwell/api/pkg/billing"
	"github.com/vivwell/api/pkg/esign"
	"github.com/vivwell/api/pkg/models"
)

// WebhookHandler receives Stripe and DocuSeal webhook events.
type WebhookHandler struct {
	billing *billing.Service
	esign   *esign.Service
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(billingService *billing.Service, esignService *esign.Service) *WebhookHandler {
	return &WebhookHandler{
		billing: billingService,
		esign:   esignService,
	}
}

// HandleStripe godoc
// @Summary Stripe webhook
// @Description Receive invoice events from Stripe. Marks proposals paid on invoice.paid.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/webhooks/stripe [post]
func (h *WebhookHandler) HandleStripe(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Failed to read request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.billing.HandleWebhook(ctx, payload, signature); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: "Failed to process webhook",
		})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Message: "ok"})
}

// HandleDocuSeal godoc
// @Summary DocuSeal webhook
// @Description Receive e-signature events from DocuSeal. Marks proposals signed on form.completed.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/webhooks/docuseal [post]
func (h *WebhookHandler) HandleDocuSeal(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Failed to read request body",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	signature := c.Request().Header.Get("X-DocuSeal-Signature")
	if err := h.esign.HandleWebhook(ctx, payload, signature); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: "Failed to process webhook",
		})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Message: "ok"})
}
