//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockQuoteUseCase
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockQuoteUseCase(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockUseCase)

	s.router.POST("/quotes", s.handler.Create)
	s.router.GET("/quotes", s.handler.List)
	s.router.GET("/quotes/:id", s.handler.Get)
	s.router.POST("/quotes/:id/provider-quote", s.handler.RequestProviderQuote)
	s.router.DELETE("/quotes/:id", s.handler.Delete)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestCreate() {
	customerID := uuid.New()
	warehouseID := uuid.New()
	itemID := uuid.New()
	body := map[string]any{
		"customer_id":  customerID.String(),
		"warehouse_id": warehouseID.String(),
		"lines":        []map[string]any{{"item_id": itemID.String(), "quantity": 3}},
	}

	s.Run("success: returns 201 with the composed draft", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&readmodel.QuoteView{
				ID: uuid.New(), Status: "draft",
				CustomerID: customerID, WarehouseID: warehouseID,
				SubtotalCents: 7500,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "")

		var resp resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("draft", resp.Status)
		s.Equal(int64(7500), resp.SubtotalCents)
	})

	s.Run("failure: returns 400 when a role check fails", func() {
		s.mockUseCase.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrCustomerRole).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "CUSTOMER role")
	})

	s.Run("failure: returns 400 for an empty lines array", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", map[string]any{
			"customer_id":  customerID.String(),
			"warehouse_id": warehouseID.String(),
			"lines":        []map[string]any{},
		}, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *QuoteHandlerTestSuite) TestRequestProviderQuote() {
	id := uuid.New()
	url := "/quotes/" + id.String() + "/provider-quote"

	s.Run("success: returns 200 with provider pricing", func() {
		fee := int64(899)
		providerQuoteID := "dqt_123"
		s.mockUseCase.EXPECT().RequestProviderQuote(gomock.Any(), id).
			Return(&readmodel.QuoteView{
				ID: id, Status: "quoted", FeeCents: &fee, ProviderQuoteID: &providerQuoteID,
			}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var resp resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("quoted", resp.Status)
		s.Equal(int64(899), *resp.FeeCents)
		s.Equal("dqt_123", *resp.ProviderQuoteID)
	})

	s.Run("failure: returns 409 when the quote is already priced", func() {
		s.mockUseCase.EXPECT().RequestProviderQuote(gomock.Any(), id).
			Return(nil, usecase.ErrQuoteAlreadyPriced).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already priced")
	})

	s.Run("failure: relays the provider error body verbatim as 502", func() {
		providerBody := `{"kind":"error","code":"address_undeliverable","message":"The specified location is not deliverable"}`
		s.mockUseCase.EXPECT().RequestProviderQuote(gomock.Any(), id).
			Return(nil, &courier.APIError{StatusCode: 400, Body: []byte(providerBody)}).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusBadGateway, w.Code)
		s.JSONEq(providerBody, w.Body.String())
	})
}

func (s *QuoteHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 204 for a draft", func() {
		s.mockUseCase.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotes/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("failure: returns 409 when a delivery references the quote", func() {
		s.mockUseCase.EXPECT().Delete(gomock.Any(), id).Return(usecase.ErrQuoteReferenced).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/quotes/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "referenced")
	})
}
