package api

import (
	"log/slog"
	"net/http"

	"courier-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookUseCase usecase.WebhookUseCase
	logger         *slog.Logger
}

func NewWebhookHandler(webhookUseCase usecase.WebhookUseCase, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
		logger:         logger,
	}
}

// @Summary Courier webhook
// @Description Receive a courier provider webhook. Always acknowledged with 204.
// @Tags webhooks
// @Accept json
// @Success 204 "No Content"
// @Router /webhooks/courier [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		h.logger.Warn("failed to read webhook body", "error", err)
		c.Status(http.StatusNoContent)
		return
	}

	// Ack unconditionally: a retry storm from the provider helps nobody, and
	// the payload is already recorded (or the failure logged) downstream.
	if err := h.webhookUseCase.Ingest(c.Request.Context(), payload); err != nil {
		h.logger.Error("webhook ingestion failed", "error", err)
	}
	c.Status(http.StatusNoContent)
}
