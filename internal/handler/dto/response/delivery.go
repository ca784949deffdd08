package response

import (
	"encoding/json"
	"time"

	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DeliveryResponse struct {
	ID                 uuid.UUID  `json:"id"`
	QuoteID            uuid.UUID  `json:"quoteId"`
	ProviderQuoteID    *string    `json:"providerQuoteId,omitempty"`
	ProviderDeliveryID string     `json:"providerDeliveryId"`
	ExternalID         string     `json:"externalId"`
	Status             string     `json:"status"`
	StatusEventAt      *time.Time `json:"statusEventAt,omitempty"`
	// ProviderResponse is the provider's latest payload, passed through opaque.
	ProviderResponse json.RawMessage `json:"providerResponse,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func FromDeliveryView(rm *readmodel.DeliveryView) *DeliveryResponse {
	return &DeliveryResponse{
		ID:                 rm.ID,
		QuoteID:            rm.QuoteID,
		ProviderQuoteID:    rm.ProviderQuoteID,
		ProviderDeliveryID: rm.ProviderDeliveryID,
		ExternalID:         rm.ExternalID,
		Status:             rm.Status,
		StatusEventAt:      rm.StatusEventAt,
		ProviderResponse:   rm.ProviderResponse,
		CreatedAt:          rm.CreatedAt,
		UpdatedAt:          rm.UpdatedAt,
	}
}

func FromDeliveryViews(rms []*readmodel.DeliveryView) []*DeliveryResponse {
	resp := make([]*DeliveryResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromDeliveryView(rm)
	}
	return resp
}

type WebhookEventResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ProviderDeliveryID string          `json:"providerDeliveryId,omitempty"`
	EventType          string          `json:"eventType,omitempty"`
	Status             string          `json:"status,omitempty"`
	Payload            json.RawMessage `json:"payload"`
	ReceivedAt         time.Time       `json:"receivedAt"`
}

func FromWebhookEventViews(rms []*readmodel.WebhookEventView) []*WebhookEventResponse {
	resp := make([]*WebhookEventResponse, len(rms))
	for i, rm := range rms {
		resp[i] = &WebhookEventResponse{
			ID:                 rm.ID,
			ProviderDeliveryID: rm.ProviderDeliveryID,
			EventType:          rm.EventType,
			Status:             rm.Status,
			Payload:            rm.Payload,
			ReceivedAt:         rm.ReceivedAt,
		}
	}
	return resp
}
