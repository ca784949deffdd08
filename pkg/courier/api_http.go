package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPAPIClient is the production implementation of APIClient. Every call
// bears a bearer token from the TokenSource and a JSON body; non-success
// responses surface as *APIError with the provider's payload untouched.
type HTTPAPIClient struct {
	baseURL    string
	accountID  string
	tokens     *TokenSource
	httpClient *http.Client
}

type HTTPAPIClientConfig struct {
	BaseURL   string
	AccountID string
	Tokens    *TokenSource
	Timeout   time.Duration
}

func NewHTTPAPIClient(cfg HTTPAPIClientConfig) *HTTPAPIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &HTTPAPIClient{
		baseURL:   cfg.BaseURL,
		accountID: cfg.AccountID,
		tokens:    cfg.Tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CreateQuote requests a priced, scheduled quote for a pickup/dropoff pair.
// POST /customers/{account}/delivery_quotes
func (c *HTTPAPIClient) CreateQuote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	body, err := c.do(ctx, http.MethodPost, "/delivery_quotes", req)
	if err != nil {
		return nil, err
	}

	var quote Quote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}
	quote.Raw = body
	return &quote, nil
}

// CreateDelivery creates a delivery from a priced quote.
// POST /customers/{account}/deliveries
//
// A fixed simulation directive is always injected so behavior stays
// deterministic on non-production provider accounts.
func (c *HTTPAPIClient) CreateDelivery(ctx context.Context, req *DeliveryRequest) (*Delivery, error) {
	payload, err := withTestDirective(req)
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, "/deliveries", payload)
	if err != nil {
		return nil, err
	}

	return decodeDelivery(body)
}

// GetDelivery fetches the provider's current view of a delivery.
// GET /customers/{account}/deliveries/{id}
func (c *HTTPAPIClient) GetDelivery(ctx context.Context, deliveryID string) (*Delivery, error) {
	body, err := c.do(ctx, http.MethodGet, "/deliveries/"+deliveryID, nil)
	if err != nil {
		return nil, err
	}

	return decodeDelivery(body)
}

// CancelDelivery cancels a delivery with the provider.
// POST /customers/{account}/deliveries/{id}/cancel
func (c *HTTPAPIClient) CancelDelivery(ctx context.Context, deliveryID string) (*Delivery, error) {
	body, err := c.do(ctx, http.MethodPost, "/deliveries/"+deliveryID+"/cancel", nil)
	if err != nil {
		return nil, err
	}

	return decodeDelivery(body)
}

// do issues a request against the provider's account-scoped API surface and
// returns the raw response body. The parsed error path preserves the
// provider's payload verbatim.
func (c *HTTPAPIClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.accountID == "" {
		return nil, ErrNotConfigured
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	url := c.baseURL + "/customers/" + c.accountID + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: respBody}
	}

	return respBody, nil
}

// withTestDirective merges the fixed simulation directive into a delivery
// request without the directive leaking into the DeliveryRequest type.
func withTestDirective(req *DeliveryRequest) (map[string]any, error) {
	encoded, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode delivery request: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, err
	}
	payload["test_specifications"] = map[string]any{
		"robo_courier_specification": map[string]any{"mode": "auto"},
	}
	return payload, nil
}

func decodeDelivery(body []byte) (*Delivery, error) {
	var d Delivery
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("failed to decode delivery response: %w", err)
	}
	d.Raw = body
	return &d, nil
}
