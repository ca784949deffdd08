package courier

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"courier-admin/internal/metrics"
	"courier-admin/internal/pkg/clock"
)

// Client is the high-level courier client used by the usecase layer. It
// delegates API calls to the underlying APIClient (mock or HTTP) and adds
// logging and metrics.
type Client struct {
	apiClient APIClient
	logger    *slog.Logger
}

// New creates a courier client. With cfg.UseMock it runs against the mock
// API client; otherwise against the real HTTP API with a shared TokenSource.
func New(cfg Config, logger *slog.Logger, clk clock.Clock) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		tokens := NewTokenSource(cfg, &http.Client{Timeout: 30 * time.Second}, clk)
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL:   cfg.BaseURL,
			AccountID: cfg.AccountID,
			Tokens:    tokens,
		})
	}

	return &Client{apiClient: apiClient, logger: logger}
}

// NewWithAPIClient creates a courier client with a custom API client. Useful
// for injecting mocks in tests.
func NewWithAPIClient(apiClient APIClient, logger *slog.Logger) *Client {
	return &Client{apiClient: apiClient, logger: logger}
}

// RequestQuote asks the provider to price a pickup/dropoff pair.
func (c *Client) RequestQuote(ctx context.Context, pickupAddress, dropoffAddress string) (*Quote, error) {
	c.logger.Info("requesting courier quote",
		"pickup_address", pickupAddress,
		"dropoff_address", dropoffAddress,
	)

	quote, err := c.apiClient.CreateQuote(ctx, &QuoteRequest{
		PickupAddress:  pickupAddress,
		DropoffAddress: dropoffAddress,
	})
	if err != nil {
		c.observe("create_quote", err)
		c.logger.Error("courier quote request failed", "error", err)
		return nil, err
	}

	c.observe("create_quote", nil)
	return quote, nil
}

// CreateDelivery schedules a delivery with the provider.
func (c *Client) CreateDelivery(ctx context.Context, req *DeliveryRequest) (*Delivery, error) {
	c.logger.Info("creating courier delivery",
		"external_id", req.ExternalID,
		"quote_id", req.QuoteID,
		"manifest_items", len(req.ManifestItems),
	)

	delivery, err := c.apiClient.CreateDelivery(ctx, req)
	if err != nil {
		c.observe("create_delivery", err)
		c.logger.Error("courier delivery creation failed", "error", err)
		return nil, err
	}

	c.observe("create_delivery", nil)
	return delivery, nil
}

// GetDelivery fetches the provider's current status for a delivery.
func (c *Client) GetDelivery(ctx context.Context, deliveryID string) (*Delivery, error) {
	delivery, err := c.apiClient.GetDelivery(ctx, deliveryID)
	if err != nil {
		c.observe("get_delivery", err)
		c.logger.Error("courier delivery lookup failed", "delivery_id", deliveryID, "error", err)
		return nil, err
	}

	c.observe("get_delivery", nil)
	return delivery, nil
}

// CancelDelivery cancels a delivery with the provider.
func (c *Client) CancelDelivery(ctx context.Context, deliveryID string) (*Delivery, error) {
	c.logger.Info("cancelling courier delivery", "delivery_id", deliveryID)

	delivery, err := c.apiClient.CancelDelivery(ctx, deliveryID)
	if err != nil {
		c.observe("cancel_delivery", err)
		c.logger.Error("courier delivery cancellation failed", "delivery_id", deliveryID, "error", err)
		return nil, err
	}

	c.observe("cancel_delivery", nil)
	return delivery, nil
}

func (c *Client) observe(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.ProviderRequests.WithLabelValues(operation, outcome).Inc()
}
