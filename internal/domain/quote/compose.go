package quote

import (
	"courier-admin/internal/domain/item"
	"courier-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUnknownItem     = errs.New("quote references unknown item")
	ErrInvalidQuantity = errs.New("quote line quantity must be positive")
)

// RequestedLine is an (item, quantity) pair as submitted by the operator.
type RequestedLine struct {
	ItemID   uuid.UUID
	Quantity int32
}

// ComposeLines resolves requested lines against a catalog snapshot and prices
// them. All-or-nothing: any unknown item or non-positive quantity fails the
// whole composition, so no partial quote is ever produced.
func ComposeLines(requested []RequestedLine, catalog []*item.Item) ([]Line, int64, error) {
	byID := make(map[uuid.UUID]*item.Item, len(catalog))
	for _, it := range catalog {
		byID[it.ID] = it
	}

	lines := make([]Line, 0, len(requested))
	var subtotal int64
	for _, req := range requested {
		if req.Quantity <= 0 {
			return nil, 0, ErrInvalidQuantity
		}
		it, ok := byID[req.ItemID]
		if !ok {
			return nil, 0, ErrUnknownItem
		}
		lineTotal := it.UnitPriceCents * int64(req.Quantity)
		lines = append(lines, Line{
			ItemID:         it.ID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       req.Quantity,
			LineTotalCents: lineTotal,
		})
		subtotal += lineTotal
	}

	return lines, subtotal, nil
}
