package delivery

import (
	"strings"
	"testing"
	"time"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/quote"
	"courier-admin/pkg/courier"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quotedQuote(t *testing.T, pickup, dropoff account.Address) *quote.Quote {
	t.Helper()
	q := quote.New(uuid.New(), uuid.New(), pickup, dropoff, []quote.Line{
		{ItemID: uuid.New(), Name: "Widget", UnitPriceCents: 250, Quantity: 3, LineTotalCents: 750},
		{ItemID: uuid.New(), Name: "Crate", UnitPriceCents: 10000, Quantity: 1, LineTotalCents: 10000},
	}, 10750)
	q.MarkQuoted("qto_abc", 1899, []byte(`{"id":"qto_abc"}`))
	return q
}

func testParties() (warehouse, customer *account.Account) {
	warehouse = &account.Account{
		ID: uuid.New(), Role: account.RoleWarehouse,
		Name: "Springfield Depot", Phone: "+15550000001",
	}
	customer = &account.Account{
		ID: uuid.New(), Role: account.RoleCustomer,
		Name: "Jordan Miles", Phone: "+15550000002",
	}
	return warehouse, customer
}

func TestBuildPayload(t *testing.T) {
	pickup := account.Address{Street: "100 Depot Rd", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US"}
	dropoff := account.Address{Street: "7 Elm St", City: "Springfield", State: "IL", PostalCode: "62704", Country: "US"}
	q := quotedQuote(t, pickup, dropoff)
	warehouse, customer := testParties()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := BuildPayload(q, warehouse, customer, Overrides{ExternalID: "JOB_custom"}, now)
	require.NoError(t, err)

	want := &courier.DeliveryRequest{
		QuoteID:        "qto_abc",
		ExternalID:     "JOB_custom",
		PickupName:     "Springfield Depot",
		PickupAddress:  "100 Depot Rd, Springfield, IL, 62701, US",
		PickupPhone:    "+15550000001",
		DropoffName:    "Jordan Miles",
		DropoffAddress: "7 Elm St, Springfield, IL, 62704, US",
		DropoffPhone:   "+15550000002",
		ManifestItems: []courier.ManifestItem{
			{Name: "Widget", Quantity: 3, Size: "medium", PriceCents: 250},
			{Name: "Crate", Quantity: 1, Size: "medium", PriceCents: 10000},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}

	// Identical inputs produce a byte-identical payload.
	again, err := BuildPayload(q, warehouse, customer, Overrides{ExternalID: "JOB_custom"}, now)
	require.NoError(t, err)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("payload not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildPayload_AddressContactOverrides(t *testing.T) {
	pickup := account.Address{Name: "Dock B", Phone: "+15559990000", Street: "100 Depot Rd", City: "Springfield"}
	dropoff := account.Address{Street: "7 Elm St", City: "Springfield"}
	q := quotedQuote(t, pickup, dropoff)
	warehouse, customer := testParties()

	got, err := BuildPayload(q, warehouse, customer, Overrides{}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "Dock B", got.PickupName)
	assert.Equal(t, "+15559990000", got.PickupPhone)
	assert.Equal(t, "Jordan Miles", got.DropoffName)
	assert.Equal(t, "+15550000002", got.DropoffPhone)
}

func TestBuildPayload_DefaultExternalID(t *testing.T) {
	pickup := account.Address{Street: "100 Depot Rd", City: "Springfield"}
	dropoff := account.Address{Street: "7 Elm St", City: "Springfield"}
	q := quotedQuote(t, pickup, dropoff)
	warehouse, customer := testParties()

	first, err := BuildPayload(q, warehouse, customer, Overrides{}, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := BuildPayload(q, warehouse, customer, Overrides{}, time.Date(2025, 6, 1, 12, 0, 0, 1, time.UTC))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ExternalID, "JOB_"))
	suffix := strings.ReplaceAll(q.ID.String(), "-", "")
	assert.Contains(t, first.ExternalID, suffix[len(suffix)-6:])
	assert.NotEqual(t, first.ExternalID, second.ExternalID, "different instants must yield different ids")
}

func TestBuildPayload_ValidationErrors(t *testing.T) {
	warehouse, customer := testParties()
	pickup := account.Address{Street: "100 Depot Rd", City: "Springfield"}
	dropoff := account.Address{Street: "7 Elm St", City: "Springfield"}

	t.Run("draft quote", func(t *testing.T) {
		q := quote.New(uuid.New(), uuid.New(), pickup, dropoff, nil, 0)
		_, err := BuildPayload(q, warehouse, customer, Overrides{}, time.Now())
		assert.ErrorIs(t, err, ErrQuoteNotPriced)
	})

	t.Run("empty pickup address", func(t *testing.T) {
		q := quotedQuote(t, account.Address{}, dropoff)
		_, err := BuildPayload(q, warehouse, customer, Overrides{}, time.Now())
		assert.ErrorIs(t, err, ErrMissingPickupAddress)
	})

	t.Run("empty dropoff address", func(t *testing.T) {
		q := quotedQuote(t, pickup, account.Address{})
		_, err := BuildPayload(q, warehouse, customer, Overrides{}, time.Now())
		assert.ErrorIs(t, err, ErrMissingDropoffAddress)
	})

	t.Run("no pickup phone anywhere", func(t *testing.T) {
		q := quotedQuote(t, pickup, dropoff)
		warehouseNoPhone := *warehouse
		warehouseNoPhone.Phone = ""
		_, err := BuildPayload(q, &warehouseNoPhone, customer, Overrides{}, time.Now())
		assert.ErrorIs(t, err, ErrMissingPickupPhone)
	})

	t.Run("no dropoff phone anywhere", func(t *testing.T) {
		q := quotedQuote(t, pickup, dropoff)
		customerNoPhone := *customer
		customerNoPhone.Phone = ""
		_, err := BuildPayload(q, warehouse, &customerNoPhone, Overrides{}, time.Now())
		assert.ErrorIs(t, err, ErrMissingDropoffPhone)
	})
}

func TestBuildPayload_ManifestSizeOverride(t *testing.T) {
	pickup := account.Address{Street: "100 Depot Rd", City: "Springfield"}
	dropoff := account.Address{Street: "7 Elm St", City: "Springfield"}
	q := quotedQuote(t, pickup, dropoff)
	warehouse, customer := testParties()

	got, err := BuildPayload(q, warehouse, customer, Overrides{ManifestSize: "xlarge"}, time.Now())
	require.NoError(t, err)
	for _, mi := range got.ManifestItems {
		assert.Equal(t, "xlarge", mi.Size)
	}
}
