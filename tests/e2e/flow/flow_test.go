//go:build e2e

package flow_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "courier-admin/internal/handler/dto/response"
	"courier-admin/tests/common/httptest"
	"courier-admin/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	accountsURL   = "/api/accounts"
	itemsURL      = "/api/items"
	quotesURL     = "/api/quotes"
	deliveriesURL = "/api/deliveries"
	webhookURL    = "/webhooks/courier"
)

type flowSuite struct {
	e2e.SharedSuite
	token string
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(flowSuite))
}

func (s *flowSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = s.Login()
}

func (s *flowSuite) SetupTest() {
	s.ResetDB()
}

func (s *flowSuite) createAccount(role, name, phone, street string) resdto.AccountResponse {
	body := map[string]any{
		"role":  role,
		"name":  name,
		"phone": phone,
		"address": map[string]any{
			"street":      street,
			"city":        "Springfield",
			"state":       "IL",
			"postal_code": "62704",
			"country":     "US",
		},
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, accountsURL, body, s.token)

	var resp resdto.AccountResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	return resp
}

func (s *flowSuite) createItem(name string, priceCents int64) resdto.ItemResponse {
	body := map[string]any{"name": name, "unit_price_cents": priceCents, "quantity_on_hand": 25}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, itemsURL, body, s.token)

	var resp resdto.ItemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	return resp
}

// createDraftQuote walks account, item and quote creation and returns the
// composed draft.
func (s *flowSuite) createDraftQuote() resdto.QuoteResponse {
	customer := s.createAccount("CUSTOMER", "Acme Retail", "+15550001111", "500 Main St")
	warehouse := s.createAccount("WAREHOUSE", "Central Depot", "+15550002222", "100 Depot Rd")
	widget := s.createItem("Widget", 2500)
	gadget := s.createItem("Gadget", 1200)

	body := map[string]any{
		"customer_id":  customer.ID.String(),
		"warehouse_id": warehouse.ID.String(),
		"lines": []map[string]any{
			{"item_id": widget.ID.String(), "quantity": 3},
			{"item_id": gadget.ID.String(), "quantity": 1},
		},
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, quotesURL, body, s.token)

	var draft resdto.QuoteResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &draft)
	s.Equal("draft", draft.Status)
	s.Equal(int64(8700), draft.SubtotalCents)
	return draft
}

func (s *flowSuite) createPricedQuote() resdto.QuoteResponse {
	draft := s.createDraftQuote()

	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		quotesURL+"/"+draft.ID.String()+"/provider-quote", nil, s.token)

	var quoted resdto.QuoteResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &quoted)
	s.Equal("quoted", quoted.Status)
	s.Require().NotNil(quoted.FeeCents)
	s.Equal(int64(4500), *quoted.FeeCents)
	s.Require().NotNil(quoted.ProviderQuoteID)
	return quoted
}

func (s *flowSuite) createDelivery(quote resdto.QuoteResponse) resdto.DeliveryResponse {
	body := map[string]any{"quote_id": quote.ID.String()}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, deliveriesURL, body, s.token)

	var resp resdto.DeliveryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	s.Equal("pending", resp.Status)
	s.NotEmpty(resp.ProviderDeliveryID)
	s.Contains(resp.ExternalID, "JOB_")
	return resp
}

func (s *flowSuite) getDelivery(id string) resdto.DeliveryResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, deliveriesURL+"/"+id, nil, s.token)

	var resp resdto.DeliveryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	return resp
}

func (s *flowSuite) postWebhook(providerDeliveryID, status string, createdAt time.Time) {
	payload := fmt.Sprintf(
		`{"event_type":"delivery.status_changed","delivery_id":%q,"status":%q,"created":%q}`,
		providerDeliveryID, status, createdAt.Format(time.RFC3339))
	w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, webhookURL, []byte(payload))
	s.Equal(http.StatusNoContent, w.Code)
}

func (s *flowSuite) TestQuoteToDeliveryLifecycle() {
	quoted := s.createPricedQuote()
	created := s.createDelivery(quoted)

	s.Run("only draft quotes can be deleted", func() {
		draft := s.createDraftQuote()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			quotesURL+"/"+draft.ID.String(), nil, s.token)
		s.Equal(http.StatusNoContent, w.Code)

		// The priced quote backing the delivery is out of reach.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			quotesURL+"/"+quoted.ID.String(), nil, s.token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "quote not found")
	})

	s.Run("status refresh pulls the provider's current state", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			deliveriesURL+"/"+created.ID.String()+"/refresh", nil, s.token)

		var refreshed resdto.DeliveryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &refreshed)
		s.Equal("pickup", refreshed.Status)
	})

	s.Run("cancel moves the delivery to canceled", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			deliveriesURL+"/"+created.ID.String()+"/cancel", nil, s.token)

		var canceled resdto.DeliveryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &canceled)
		s.Equal("canceled", canceled.Status)
	})
}

func (s *flowSuite) TestWebhookStatusOrdering() {
	quoted := s.createPricedQuote()
	created := s.createDelivery(quoted)
	base := time.Now().UTC().Truncate(time.Second)

	// First event applies: the delivery has no watermark yet.
	s.postWebhook(created.ProviderDeliveryID, "dropoff", base)
	s.Equal("dropoff", s.getDelivery(created.ID.String()).Status)

	// An older event arriving late must not regress the status.
	s.postWebhook(created.ProviderDeliveryID, "pickup", base.Add(-10*time.Minute))
	s.Equal("dropoff", s.getDelivery(created.ID.String()).Status)

	// A newer event advances it.
	s.postWebhook(created.ProviderDeliveryID, "delivered", base.Add(5*time.Minute))
	s.Equal("delivered", s.getDelivery(created.ID.String()).Status)

	// A webhook for an unknown delivery is acked and audited, nothing more.
	s.postWebhook("del_does_not_exist", "pickup", base.Add(6*time.Minute))

	s.Run("every received event is on the audit trail", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			deliveriesURL+"/"+created.ID.String()+"/events", nil, s.token)

		var events []resdto.WebhookEventResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &events)
		s.Len(events, 3)
	})
}

func (s *flowSuite) TestRequiresAuthentication() {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemsURL, nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemsURL, nil, "not-a-valid-token")
	s.Equal(http.StatusUnauthorized, w.Code)
}
