package api

import (
	"net/http"

	reqdto "courier-admin/internal/handler/dto/request"
	resdto "courier-admin/internal/handler/dto/response"
	"courier-admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	deliveryUseCase usecase.DeliveryUseCase
	webhookUseCase  usecase.WebhookUseCase
}

func NewDeliveryHandler(deliveryUseCase usecase.DeliveryUseCase, webhookUseCase usecase.WebhookUseCase) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUseCase: deliveryUseCase,
		webhookUseCase:  webhookUseCase,
	}
}

// @Summary Create delivery
// @Description Schedule a delivery with the courier provider from a priced quote
// @Tags deliveries
// @Accept json
// @Produce json
// @Param request body reqdto.CreateDeliveryRequest true "Delivery to create"
// @Success 201 {object} resdto.DeliveryResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} map[string]any
// @Router /deliveries [post]
func (h *DeliveryHandler) Create(c *gin.Context) {
	var req reqdto.CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.deliveryUseCase.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDeliveryView(view))
}

// @Summary Get delivery
// @Tags deliveries
// @Produce json
// @Param id path string true "Delivery ID"
// @Success 200 {object} resdto.DeliveryResponse
// @Failure 404 {object} httperr.Response
// @Router /deliveries/{id} [get]
func (h *DeliveryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.deliveryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeliveryView(view))
}

// @Summary List deliveries
// @Tags deliveries
// @Produce json
// @Success 200 {array} resdto.DeliveryResponse
// @Router /deliveries [get]
func (h *DeliveryHandler) List(c *gin.Context) {
	views, err := h.deliveryUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeliveryViews(views))
}

// @Summary Refresh delivery status
// @Description Pull the provider's current status for the delivery
// @Tags deliveries
// @Produce json
// @Param id path string true "Delivery ID"
// @Success 200 {object} resdto.DeliveryResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} map[string]any
// @Router /deliveries/{id}/refresh [post]
func (h *DeliveryHandler) RefreshStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.deliveryUseCase.RefreshStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeliveryView(view))
}

// @Summary Cancel delivery
// @Tags deliveries
// @Produce json
// @Param id path string true "Delivery ID"
// @Success 200 {object} resdto.DeliveryResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} map[string]any
// @Router /deliveries/{id}/cancel [post]
func (h *DeliveryHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.deliveryUseCase.Cancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeliveryView(view))
}

// @Summary List delivery webhook events
// @Description List the audit trail of webhook events recorded for the delivery
// @Tags deliveries
// @Produce json
// @Param id path string true "Delivery ID"
// @Success 200 {array} resdto.WebhookEventResponse
// @Failure 404 {object} httperr.Response
// @Router /deliveries/{id}/events [get]
func (h *DeliveryHandler) ListEvents(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.deliveryUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	events, err := h.webhookUseCase.ListEvents(c.Request.Context(), view.ProviderDeliveryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWebhookEventViews(events))
}
