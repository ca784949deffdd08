package courier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"courier-admin/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPIClient(t *testing.T, handler http.HandlerFunc) (*HTTPAPIClient, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","expires_in":3600}`))
	})
	mux.HandleFunc("/", handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	tokens := NewTokenSource(Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		AuthURL:      server.URL + "/oauth/token",
	}, server.Client(), clock.NewMockClock(time.Now()))

	client := NewHTTPAPIClient(HTTPAPIClientConfig{
		BaseURL:   server.URL,
		AccountID: "acct_123",
		Tokens:    tokens,
	})
	return client, server
}

func TestHTTPAPIClient_CreateQuote(t *testing.T) {
	client, _ := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers/acct_123/delivery_quotes", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req QuoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "100 Depot Rd, Springfield", req.PickupAddress)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"qto_abc","fee":1899,"currency_code":"USD"}`))
	})

	quote, err := client.CreateQuote(context.Background(), &QuoteRequest{
		PickupAddress:  "100 Depot Rd, Springfield",
		DropoffAddress: "7 Elm St, Springfield",
	})
	require.NoError(t, err)
	assert.Equal(t, "qto_abc", quote.ID)
	assert.Equal(t, int64(1899), quote.FeeCents)
	assert.JSONEq(t, `{"id":"qto_abc","fee":1899,"currency_code":"USD"}`, string(quote.Raw))
}

func TestHTTPAPIClient_CreateDeliveryInjectsTestDirective(t *testing.T) {
	client, _ := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers/acct_123/deliveries", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		spec, ok := payload["test_specifications"].(map[string]any)
		require.True(t, ok, "test_specifications must always be present")
		robo, ok := spec["robo_courier_specification"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "auto", robo["mode"])

		assert.Equal(t, "qto_abc", payload["quote_id"])
		assert.Equal(t, "JOB_x_1", payload["external_id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"del_123","status":"pending"}`))
	})

	delivery, err := client.CreateDelivery(context.Background(), &DeliveryRequest{
		QuoteID:    "qto_abc",
		ExternalID: "JOB_x_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "del_123", delivery.ID)
	assert.Equal(t, "pending", delivery.Status)
}

func TestHTTPAPIClient_GetAndCancelDelivery(t *testing.T) {
	client, _ := newTestAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/customers/acct_123/deliveries/del_123":
			_, _ = w.Write([]byte(`{"id":"del_123","status":"dropoff"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/customers/acct_123/deliveries/del_123/cancel":
			_, _ = w.Write([]byte(`{"id":"del_123","status":"canceled"}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	current, err := client.GetDelivery(context.Background(), "del_123")
	require.NoError(t, err)
	assert.Equal(t, "dropoff", current.Status)

	canceled, err := client.CancelDelivery(context.Background(), "del_123")
	require.NoError(t, err)
	assert.Equal(t, "canceled", canceled.Status)
}

func TestHTTPAPIClient_ErrorBodyPassthrough(t *testing.T) {
	providerBody := `{"code":"invalid_params","message":"dropoff address is not deliverable"}`
	client, _ := newTestAPIClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(providerBody))
	})

	_, err := client.CreateQuote(context.Background(), &QuoteRequest{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, providerBody, string(apiErr.Body))
}

func TestHTTPAPIClient_MissingAccountID(t *testing.T) {
	client := NewHTTPAPIClient(HTTPAPIClientConfig{
		BaseURL: "http://localhost",
		Tokens:  NewTokenSource(Config{ClientID: "a", ClientSecret: "b"}, nil, nil),
	})

	_, err := client.GetDelivery(context.Background(), "del_123")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
