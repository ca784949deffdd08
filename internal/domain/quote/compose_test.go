package quote

import (
	"testing"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/item"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addr(street string) account.Address {
	return account.Address{Street: street, City: "Springfield", State: "IL", PostalCode: "62701", Country: "US"}
}

func TestComposeLines(t *testing.T) {
	widget := &item.Item{ID: uuid.New(), Name: "Widget", UnitPriceCents: 250}
	crate := &item.Item{ID: uuid.New(), Name: "Crate", UnitPriceCents: 10000}
	catalog := []*item.Item{widget, crate}

	lines, subtotal, err := ComposeLines([]RequestedLine{
		{ItemID: widget.ID, Quantity: 3},
		{ItemID: crate.ID, Quantity: 1},
	}, catalog)
	require.NoError(t, err)

	want := []Line{
		{ItemID: widget.ID, Name: "Widget", UnitPriceCents: 250, Quantity: 3, LineTotalCents: 750},
		{ItemID: crate.ID, Name: "Crate", UnitPriceCents: 10000, Quantity: 1, LineTotalCents: 10000},
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(10750), subtotal)
}

func TestComposeLines_UnknownItemFailsWhole(t *testing.T) {
	widget := &item.Item{ID: uuid.New(), Name: "Widget", UnitPriceCents: 250}

	lines, subtotal, err := ComposeLines([]RequestedLine{
		{ItemID: widget.ID, Quantity: 1},
		{ItemID: uuid.New(), Quantity: 1},
	}, []*item.Item{widget})

	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Nil(t, lines)
	assert.Zero(t, subtotal)
}

func TestComposeLines_NonPositiveQuantity(t *testing.T) {
	widget := &item.Item{ID: uuid.New(), Name: "Widget", UnitPriceCents: 250}

	for _, qty := range []int32{0, -2} {
		_, _, err := ComposeLines([]RequestedLine{{ItemID: widget.ID, Quantity: qty}}, []*item.Item{widget})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestMarkQuoted(t *testing.T) {
	q := New(uuid.New(), uuid.New(), addr("100 Depot Rd"), addr("7 Elm St"), nil, 0)
	assert.Equal(t, StatusDraft, q.Status)
	assert.False(t, q.IsQuoted())

	q.MarkQuoted("qto_abc", 1899, []byte(`{"id":"qto_abc"}`))
	assert.True(t, q.IsQuoted())
	assert.Equal(t, StatusQuoted, q.Status)
	require.NotNil(t, q.FeeCents)
	assert.Equal(t, int64(1899), *q.FeeCents)
	require.NotNil(t, q.ProviderQuoteID)
	assert.Equal(t, "qto_abc", *q.ProviderQuoteID)
}
