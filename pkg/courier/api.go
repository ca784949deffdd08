// Package courier provides integration with the last-mile courier provider's
// HTTP API: priced delivery quotes, delivery creation, status lookup and
// cancellation, behind a cached client-credentials token.
package courier

import (
	"context"
	"encoding/json"
	"time"
)

// Config holds courier provider configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	AccountID    string
	BaseURL      string
	AuthURL      string
	UseMock      bool // When true, uses the mock API client
}

// QuoteRequest asks the provider to price a pickup/dropoff pair. Addresses
// are single-line text as the provider expects.
type QuoteRequest struct {
	PickupAddress  string `json:"pickup_address"`
	DropoffAddress string `json:"dropoff_address"`
}

// Quote is the provider's priced, scheduled quote.
type Quote struct {
	ID         string          `json:"id"`
	FeeCents   int64           `json:"fee"`
	Currency   string          `json:"currency_code"`
	PickupETA  *time.Time      `json:"pickup_eta,omitempty"`
	DropoffETA *time.Time      `json:"dropoff_eta,omitempty"`
	Raw        json.RawMessage `json:"-"`
}

// ManifestItem is one physical item declared to the provider for transport.
type ManifestItem struct {
	Name       string `json:"name"`
	Quantity   int32  `json:"quantity"`
	Size       string `json:"size"`
	PriceCents int64  `json:"price"`
}

// DeliveryRequest is the full payload for creating a delivery from a priced
// quote.
type DeliveryRequest struct {
	QuoteID        string         `json:"quote_id,omitempty"`
	ExternalID     string         `json:"external_id"`
	PickupName     string         `json:"pickup_name"`
	PickupAddress  string         `json:"pickup_address"`
	PickupPhone    string         `json:"pickup_phone_number"`
	DropoffName    string         `json:"dropoff_name"`
	DropoffAddress string         `json:"dropoff_address"`
	DropoffPhone   string         `json:"dropoff_phone_number"`
	ManifestItems  []ManifestItem `json:"manifest_items"`
}

// Delivery is the provider's view of a created or tracked delivery. Status
// uses the provider's own vocabulary and is stored as-is.
type Delivery struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Raw    json.RawMessage `json:"-"`
}

// APIClient abstracts the courier provider's HTTP API so tests and local
// environments can substitute a mock.
type APIClient interface {
	CreateQuote(ctx context.Context, req *QuoteRequest) (*Quote, error)
	CreateDelivery(ctx context.Context, req *DeliveryRequest) (*Delivery, error)
	GetDelivery(ctx context.Context, deliveryID string) (*Delivery, error)
	CancelDelivery(ctx context.Context, deliveryID string) (*Delivery, error)
}
