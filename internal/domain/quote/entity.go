package quote

import (
	"encoding/json"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAlreadyQuoted = errs.New("quote already priced by provider")

type Status string

const (
	StatusDraft  Status = "draft"
	StatusQuoted Status = "quoted"
)

// Line is a priced quote line. Name and UnitPriceCents are snapshots of the
// catalog item at composition time.
type Line struct {
	ItemID         uuid.UUID `json:"item_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
	LineTotalCents int64     `json:"line_total_cents"`
}

// Quote is an internal draft of a delivery request. It is created in draft
// with a computed subtotal and becomes quoted only through a successful
// provider quote call; it never reverts to draft.
type Quote struct {
	ID              uuid.UUID
	Status          Status
	CustomerID      uuid.UUID
	WarehouseID     uuid.UUID
	PickupAddress   account.Address
	DropoffAddress  account.Address
	Lines           []Line
	SubtotalCents   int64
	FeeCents        *int64
	ProviderQuoteID *string
	// ProviderResponse is the provider's quote payload kept verbatim for audit.
	ProviderResponse json.RawMessage
}

func New(customerID, warehouseID uuid.UUID, pickup, dropoff account.Address, lines []Line, subtotalCents int64) *Quote {
	return &Quote{
		ID:             uuid.New(),
		Status:         StatusDraft,
		CustomerID:     customerID,
		WarehouseID:    warehouseID,
		PickupAddress:  pickup,
		DropoffAddress: dropoff,
		Lines:          lines,
		SubtotalCents:  subtotalCents,
	}
}

// MarkQuoted records the provider's pricing. Status is quoted if and only if
// a provider quote id is set, so both are written together.
func (q *Quote) MarkQuoted(providerQuoteID string, feeCents int64, raw json.RawMessage) {
	q.Status = StatusQuoted
	q.ProviderQuoteID = &providerQuoteID
	q.FeeCents = &feeCents
	q.ProviderResponse = raw
}

func (q *Quote) IsQuoted() bool {
	return q.Status == StatusQuoted && q.ProviderQuoteID != nil
}
