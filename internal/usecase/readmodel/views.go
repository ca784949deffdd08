package readmodel

import (
	"encoding/json"
	"time"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/quote"

	"github.com/google/uuid"
)

// Read models (DTO for the read side)

type AccountView struct {
	ID        uuid.UUID       `json:"id"`
	Role      string          `json:"role"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone,omitempty"`
	Address   account.Address `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type ItemView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	QuantityOnHand int32     `json:"quantity_on_hand"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type QuoteView struct {
	ID               uuid.UUID       `json:"id"`
	Status           string          `json:"status"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	WarehouseID      uuid.UUID       `json:"warehouse_id"`
	PickupAddress    account.Address `json:"pickup_address"`
	DropoffAddress   account.Address `json:"dropoff_address"`
	Lines            []quote.Line    `json:"lines"`
	SubtotalCents    int64           `json:"subtotal_cents"`
	FeeCents         *int64          `json:"fee_cents,omitempty"`
	ProviderQuoteID  *string         `json:"provider_quote_id,omitempty"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type QuoteListItem struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	CustomerID    uuid.UUID `json:"customer_id"`
	WarehouseID   uuid.UUID `json:"warehouse_id"`
	SubtotalCents int64     `json:"subtotal_cents"`
	FeeCents      *int64    `json:"fee_cents,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type DeliveryView struct {
	ID                 uuid.UUID       `json:"id"`
	QuoteID            uuid.UUID       `json:"quote_id"`
	ProviderQuoteID    *string         `json:"provider_quote_id,omitempty"`
	ProviderDeliveryID string          `json:"provider_delivery_id"`
	ExternalID         string          `json:"external_id"`
	Status             string          `json:"status"`
	StatusEventAt      *time.Time      `json:"status_event_at,omitempty"`
	ProviderResponse   json.RawMessage `json:"provider_response,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type WebhookEventView struct {
	ID                 uuid.UUID       `json:"id"`
	ProviderDeliveryID string          `json:"provider_delivery_id,omitempty"`
	EventType          string          `json:"event_type,omitempty"`
	Status             string          `json:"status,omitempty"`
	Payload            json.RawMessage `json:"payload"`
	ReceivedAt         time.Time       `json:"received_at"`
}
