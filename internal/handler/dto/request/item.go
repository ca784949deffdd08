package request

type CreateItemRequest struct {
	Name           string `json:"name" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"required,gte=0"`
	QuantityOnHand int32  `json:"quantity_on_hand" binding:"gte=0"`
}

type UpdateItemRequest struct {
	Name           string `json:"name" binding:"required"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"required,gte=0"`
	QuantityOnHand int32  `json:"quantity_on_hand" binding:"gte=0"`
}
