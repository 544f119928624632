package handler

import (
	"io"
	"net/http"

	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/webhooks/processor"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"
)

type Handler struct {
	processor processor.WebhookProcessor
	logger    *observability.Logger
}

func New(processor processor.WebhookProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Read the request body
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "failed to read request body")
		return
	}

	// Retrieve the Stripe-Signature header
	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.BadRequest(c, "INVALID_INPUT", "missing Stripe-Signature header")
		return
	}
	event, err := webhook.ConstructEvent(payload, signatureHeader, h.processor.WebhookSecret)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "invalid webhook signature")
		return
	}

	err = h.processor.HandleWebhook(ctx, event)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
	return
}
