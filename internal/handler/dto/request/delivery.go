package request

import (
	"github.com/google/uuid"
)

type CreateDeliveryRequest struct {
	QuoteID uuid.UUID `json:"quote_id" binding:"required"`
	// ExternalID overrides the generated correlation id when set.
	ExternalID string `json:"external_id,omitempty"`
	// ManifestSize overrides the declared size of every manifest item.
	ManifestSize string `json:"manifest_size,omitempty"`
}
