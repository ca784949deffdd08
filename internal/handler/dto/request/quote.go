package request

import (
	"courier-admin/internal/domain/quote"

	"github.com/google/uuid"
)

type QuoteLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int32     `json:"quantity" binding:"required,gt=0"`
}

type CreateQuoteRequest struct {
	CustomerID  uuid.UUID          `json:"customer_id" binding:"required"`
	WarehouseID uuid.UUID          `json:"warehouse_id" binding:"required"`
	Lines       []QuoteLineRequest `json:"lines" binding:"required,min=1,dive"`
}

func (r CreateQuoteRequest) RequestedLines() []quote.RequestedLine {
	lines := make([]quote.RequestedLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = quote.RequestedLine{ItemID: l.ItemID, Quantity: l.Quantity}
	}
	return lines
}
