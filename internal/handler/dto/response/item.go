package response

import (
	"time"

	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	QuantityOnHand int32     `json:"quantityOnHand"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromItemView(rm *readmodel.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:             rm.ID,
		Name:           rm.Name,
		UnitPriceCents: rm.UnitPriceCents,
		QuantityOnHand: rm.QuantityOnHand,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromItemViews(rms []*readmodel.ItemView) []*ItemResponse {
	resp := make([]*ItemResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromItemView(rm)
	}
	return resp
}
