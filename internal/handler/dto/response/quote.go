package response

import (
	"encoding/json"
	"time"

	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type QuoteLineResponse struct {
	ItemID         uuid.UUID `json:"itemId"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int32     `json:"quantity"`
	LineTotalCents int64     `json:"lineTotalCents"`
}

type QuoteResponse struct {
	ID              uuid.UUID           `json:"id"`
	Status          string              `json:"status"`
	CustomerID      uuid.UUID           `json:"customerId"`
	WarehouseID     uuid.UUID           `json:"warehouseId"`
	PickupAddress   AddressResponse     `json:"pickupAddress"`
	DropoffAddress  AddressResponse     `json:"dropoffAddress"`
	Lines           []QuoteLineResponse `json:"lines"`
	SubtotalCents   int64               `json:"subtotalCents"`
	FeeCents        *int64              `json:"feeCents,omitempty"`
	ProviderQuoteID *string             `json:"providerQuoteId,omitempty"`
	// ProviderResponse is the provider's quote payload, passed through opaque.
	ProviderResponse json.RawMessage `json:"providerResponse,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type QuoteListResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	CustomerID    uuid.UUID `json:"customerId"`
	WarehouseID   uuid.UUID `json:"warehouseId"`
	SubtotalCents int64     `json:"subtotalCents"`
	FeeCents      *int64    `json:"feeCents,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromQuoteView(rm *readmodel.QuoteView) *QuoteResponse {
	lines := make([]QuoteLineResponse, len(rm.Lines))
	for i, l := range rm.Lines {
		lines[i] = QuoteLineResponse{
			ItemID:         l.ItemID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
			LineTotalCents: l.LineTotalCents,
		}
	}
	return &QuoteResponse{
		ID:          rm.ID,
		Status:      rm.Status,
		CustomerID:  rm.CustomerID,
		WarehouseID: rm.WarehouseID,
		PickupAddress: AddressResponse{
			Name:       rm.PickupAddress.Name,
			Phone:      rm.PickupAddress.Phone,
			Street:     rm.PickupAddress.Street,
			City:       rm.PickupAddress.City,
			State:      rm.PickupAddress.State,
			PostalCode: rm.PickupAddress.PostalCode,
			Country:    rm.PickupAddress.Country,
		},
		DropoffAddress: AddressResponse{
			Name:       rm.DropoffAddress.Name,
			Phone:      rm.DropoffAddress.Phone,
			Street:     rm.DropoffAddress.Street,
			City:       rm.DropoffAddress.City,
			State:      rm.DropoffAddress.State,
			PostalCode: rm.DropoffAddress.PostalCode,
			Country:    rm.DropoffAddress.Country,
		},
		Lines:            lines,
		SubtotalCents:    rm.SubtotalCents,
		FeeCents:         rm.FeeCents,
		ProviderQuoteID:  rm.ProviderQuoteID,
		ProviderResponse: rm.ProviderResponse,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromQuoteListItems(rms []*readmodel.QuoteListItem) []*QuoteListResponse {
	resp := make([]*QuoteListResponse, len(rms))
	for i, rm := range rms {
		resp[i] = &QuoteListResponse{
			ID:            rm.ID,
			Status:        rm.Status,
			CustomerID:    rm.CustomerID,
			WarehouseID:   rm.WarehouseID,
			SubtotalCents: rm.SubtotalCents,
			FeeCents:      rm.FeeCents,
			CreatedAt:     rm.CreatedAt,
		}
	}
	return resp
}
