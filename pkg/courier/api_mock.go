package courier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MockAPIClient is a mock implementation of APIClient for testing and local
// environments without provider credentials.
type MockAPIClient struct {
	SimulateErrors bool

	OnCreateQuote    func(ctx context.Context, req *QuoteRequest) (*Quote, error)
	OnCreateDelivery func(ctx context.Context, req *DeliveryRequest) (*Delivery, error)
	OnGetDelivery    func(ctx context.Context, deliveryID string) (*Delivery, error)
	OnCancelDelivery func(ctx context.Context, deliveryID string) (*Delivery, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// CreateQuote returns a deterministic mock quote.
func (m *MockAPIClient) CreateQuote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	if m.SimulateErrors {
		return nil, &APIError{StatusCode: 500, Body: []byte(`{"code":"mock_error"}`)}
	}
	if m.OnCreateQuote != nil {
		return m.OnCreateQuote(ctx, req)
	}

	pickupETA := time.Now().Add(20 * time.Minute)
	dropoffETA := time.Now().Add(55 * time.Minute)
	q := &Quote{
		ID:         "qto_" + uuid.New().String()[:8],
		FeeCents:   4500,
		Currency:   "USD",
		PickupETA:  &pickupETA,
		DropoffETA: &dropoffETA,
	}
	q.Raw, _ = json.Marshal(q)
	return q, nil
}

// CreateDelivery creates a mock delivery in "pending" state.
func (m *MockAPIClient) CreateDelivery(ctx context.Context, req *DeliveryRequest) (*Delivery, error) {
	if m.SimulateErrors {
		return nil, &APIError{StatusCode: 500, Body: []byte(`{"code":"mock_error"}`)}
	}
	if m.OnCreateDelivery != nil {
		return m.OnCreateDelivery(ctx, req)
	}

	d := &Delivery{
		ID:     "del_" + uuid.New().String()[:8],
		Status: "pending",
	}
	d.Raw, _ = json.Marshal(d)
	return d, nil
}

// GetDelivery returns a mock delivery snapshot.
func (m *MockAPIClient) GetDelivery(ctx context.Context, deliveryID string) (*Delivery, error) {
	if m.SimulateErrors {
		return nil, &APIError{StatusCode: 404, Body: []byte(fmt.Sprintf(`{"code":"not_found","delivery_id":%q}`, deliveryID))}
	}
	if m.OnGetDelivery != nil {
		return m.OnGetDelivery(ctx, deliveryID)
	}

	d := &Delivery{
		ID:     deliveryID,
		Status: "pickup",
	}
	d.Raw, _ = json.Marshal(d)
	return d, nil
}

// CancelDelivery cancels a mock delivery.
func (m *MockAPIClient) CancelDelivery(ctx context.Context, deliveryID string) (*Delivery, error) {
	if m.SimulateErrors {
		return nil, &APIError{StatusCode: 409, Body: []byte(`{"code":"cancellation_not_allowed"}`)}
	}
	if m.OnCancelDelivery != nil {
		return m.OnCancelDelivery(ctx, deliveryID)
	}

	d := &Delivery{
		ID:     deliveryID,
		Status: "canceled",
	}
	d.Raw, _ = json.Marshal(d)
	return d, nil
}
