package delivery

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Delivery is a confirmed, provider-scheduled pickup/dropoff created from a
// quoted Quote. Status mirrors the provider's vocabulary verbatim.
type Delivery struct {
	ID                 uuid.UUID
	QuoteID            uuid.UUID
	ProviderQuoteID    *string
	ProviderDeliveryID string
	ExternalID         string
	Status             string
	// StatusEventAt is the timestamp of the last status event applied to this
	// delivery. Webhook events older than it are logged but not applied.
	StatusEventAt *time.Time
	// ProviderResponse is the provider's latest payload kept verbatim for audit.
	ProviderResponse json.RawMessage
}

func New(quoteID uuid.UUID, providerQuoteID *string, providerDeliveryID, externalID, status string, raw json.RawMessage) *Delivery {
	return &Delivery{
		ID:                 uuid.New(),
		QuoteID:            quoteID,
		ProviderQuoteID:    providerQuoteID,
		ProviderDeliveryID: providerDeliveryID,
		ExternalID:         externalID,
		Status:             status,
		ProviderResponse:   raw,
	}
}
