package delivery

import (
	"fmt"
	"strings"
	"time"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/quote"
	"courier-admin/internal/pkg/errs"
	"courier-admin/pkg/courier"
)

var (
	ErrQuoteNotPriced        = errs.New("delivery requires a provider-priced quote")
	ErrMissingPickupAddress  = errs.New("pickup address renders empty")
	ErrMissingDropoffAddress = errs.New("dropoff address renders empty")
	ErrMissingPickupPhone    = errs.New("no pickup contact phone available")
	ErrMissingDropoffPhone   = errs.New("no dropoff contact phone available")
)

const defaultManifestSize = "medium"

// Overrides are optional caller adjustments to the generated payload.
type Overrides struct {
	ExternalID   string
	ManifestSize string
}

// BuildPayload maps a quoted Quote plus the warehouse (sender) and customer
// (recipient) identities into the provider's delivery-creation payload.
//
// Contact resolution prefers the address snapshot's own name/phone and falls
// back to the party identity. A missing phone or an empty rendered address is
// a validation error; nothing is fabricated on the operator's behalf.
func BuildPayload(q *quote.Quote, warehouse, customer *account.Account, o Overrides, now time.Time) (*courier.DeliveryRequest, error) {
	if !q.IsQuoted() {
		return nil, ErrQuoteNotPriced
	}

	pickupAddress := q.PickupAddress.RenderLine()
	if pickupAddress == "" {
		return nil, ErrMissingPickupAddress
	}
	dropoffAddress := q.DropoffAddress.RenderLine()
	if dropoffAddress == "" {
		return nil, ErrMissingDropoffAddress
	}

	pickupName, pickupPhone := resolveContact(q.PickupAddress, warehouse)
	if pickupPhone == "" {
		return nil, ErrMissingPickupPhone
	}
	dropoffName, dropoffPhone := resolveContact(q.DropoffAddress, customer)
	if dropoffPhone == "" {
		return nil, ErrMissingDropoffPhone
	}

	size := o.ManifestSize
	if size == "" {
		size = defaultManifestSize
	}
	manifest := make([]courier.ManifestItem, len(q.Lines))
	for i, line := range q.Lines {
		manifest[i] = courier.ManifestItem{
			Name:       line.Name,
			Quantity:   line.Quantity,
			Size:       size,
			PriceCents: line.UnitPriceCents,
		}
	}

	externalID := o.ExternalID
	if externalID == "" {
		externalID = defaultExternalID(q, now)
	}

	return &courier.DeliveryRequest{
		QuoteID:        *q.ProviderQuoteID,
		ExternalID:     externalID,
		PickupName:     pickupName,
		PickupAddress:  pickupAddress,
		PickupPhone:    pickupPhone,
		DropoffName:    dropoffName,
		DropoffAddress: dropoffAddress,
		DropoffPhone:   dropoffPhone,
		ManifestItems:  manifest,
	}, nil
}

func resolveContact(addr account.Address, party *account.Account) (name, phone string) {
	name = strings.TrimSpace(addr.Name)
	if name == "" {
		name = party.ContactName()
	}
	phone = strings.TrimSpace(addr.Phone)
	if phone == "" {
		phone = party.ContactPhone()
	}
	return name, phone
}

// defaultExternalID derives a correlation id from the quote id and the
// current instant, e.g. JOB_1a2b3c_1714058096123456789.
func defaultExternalID(q *quote.Quote, now time.Time) string {
	id := strings.ReplaceAll(q.ID.String(), "-", "")
	return fmt.Sprintf("JOB_%s_%d", id[len(id)-6:], now.UnixNano())
}
