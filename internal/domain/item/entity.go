package item

import (
	"strings"

	"courier-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNameRequired = errs.New("item name is required")
	ErrInvalidPrice = errs.New("item unit price must not be negative")
)

// Item is a catalog entry. Quotes snapshot its name and price at
// composition time; later edits do not flow back into existing quotes.
type Item struct {
	ID             uuid.UUID
	Name           string
	UnitPriceCents int64
	QuantityOnHand int32
}

func New(name string, unitPriceCents int64, quantityOnHand int32) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if unitPriceCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Item{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		UnitPriceCents: unitPriceCents,
		QuantityOnHand: quantityOnHand,
	}, nil
}
