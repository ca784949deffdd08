//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"courier-admin/internal/domain/delivery"
	"courier-admin/internal/handler/api"
	resdto "courier-admin/internal/handler/dto/response"
	"courier-admin/internal/usecase"
	"courier-admin/internal/usecase/readmodel"
	"courier-admin/pkg/courier"
	"courier-admin/tests/common/httptest"
	usecasemock "courier-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeliveryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockDelivery *usecasemock.MockDeliveryUseCase
	mockWebhook  *usecasemock.MockWebhookUseCase
	handler      *api.DeliveryHandler
}

func (s *DeliveryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDelivery = usecasemock.NewMockDeliveryUseCase(s.mockCtrl)
	s.mockWebhook = usecasemock.NewMockWebhookUseCase(s.mockCtrl)
	s.handler = api.NewDeliveryHandler(s.mockDelivery, s.mockWebhook)

	s.router.POST("/deliveries", s.handler.Create)
	s.router.GET("/deliveries/:id", s.handler.Get)
	s.router.POST("/deliveries/:id/refresh", s.handler.RefreshStatus)
	s.router.POST("/deliveries/:id/cancel", s.handler.Cancel)
	s.router.GET("/deliveries/:id/events", s.handler.ListEvents)
}

func (s *DeliveryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeliveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeliveryHandlerTestSuite))
}

func (s *DeliveryHandlerTestSuite) TestCreate() {
	quoteID := uuid.New()
	body := map[string]any{"quote_id": quoteID.String()}

	s.Run("success: returns 201 with the scheduled delivery", func() {
		s.mockDelivery.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&readmodel.DeliveryView{
				ID: uuid.New(), QuoteID: quoteID,
				ProviderDeliveryID: "del_789", ExternalID: "JOB_1a2b3c_99", Status: "pending",
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deliveries", body, "")

		var resp resdto.DeliveryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("del_789", resp.ProviderDeliveryID)
		s.Equal("pending", resp.Status)
	})

	s.Run("failure: returns 422 when the payload cannot be built", func() {
		s.mockDelivery.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, delivery.ErrMissingDropoffPhone).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deliveries", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "phone")
	})

	s.Run("failure: returns 404 for an unknown quote", func() {
		s.mockDelivery.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrQuoteNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deliveries", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "quote not found")
	})
}

func (s *DeliveryHandlerTestSuite) TestRefreshStatus() {
	id := uuid.New()

	s.mockDelivery.EXPECT().RefreshStatus(gomock.Any(), id).
		Return(&readmodel.DeliveryView{ID: id, ProviderDeliveryID: "del_789", Status: "dropoff"}, nil).Times(1)

	w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deliveries/"+id.String()+"/refresh", nil, "")

	var resp resdto.DeliveryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("dropoff", resp.Status)
}

func (s *DeliveryHandlerTestSuite) TestCancel() {
	id := uuid.New()

	s.Run("success: returns 200 with the canceled delivery", func() {
		s.mockDelivery.EXPECT().Cancel(gomock.Any(), id).
			Return(&readmodel.DeliveryView{ID: id, ProviderDeliveryID: "del_789", Status: "canceled"}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deliveries/"+id.String()+"/cancel", nil, "")

		var resp resdto.DeliveryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("canceled", resp.Status)
	})

	s.Run("failure: relays the provider rejection body as 502", func() {
		providerBody := `{"kind":"error","code":"cannot_cancel_delivery"}`
		s.mockDelivery.EXPECT().Cancel(gomock.Any(), id).
			Return(nil, &courier.APIError{StatusCode: 409, Body: []byte(providerBody)}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/deliveries/"+id.String()+"/cancel", nil, "")
		s.Equal(http.StatusBadGateway, w.Code)
		s.JSONEq(providerBody, w.Body.String())
	})
}

func (s *DeliveryHandlerTestSuite) TestListEvents() {
	id := uuid.New()

	s.Run("success: returns the audit trail for the delivery", func() {
		s.mockDelivery.EXPECT().Get(gomock.Any(), id).
			Return(&readmodel.DeliveryView{ID: id, ProviderDeliveryID: "del_789"}, nil).Times(1)
		s.mockWebhook.EXPECT().ListEvents(gomock.Any(), "del_789").
			Return([]*readmodel.WebhookEventView{
				{ID: uuid.New(), ProviderDeliveryID: "del_789", EventType: "delivery.status_changed",
					Status: "pickup", Payload: json.RawMessage(`{"status":"pickup"}`)},
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deliveries/"+id.String()+"/events", nil, "")

		var resp []*resdto.WebhookEventResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal("pickup", resp[0].Status)
	})

	s.Run("failure: returns 404 for an unknown delivery", func() {
		s.mockDelivery.EXPECT().Get(gomock.Any(), id).
			Return(nil, usecase.ErrDeliveryNotFound).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deliveries/"+id.String()+"/events", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "delivery not found")
	})
}
