//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"courier-admin/internal/handler/api"
	"courier-admin/tests/common/httptest"
	usecasemock "courier-admin/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockWebhookUseCase
	handler     *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockWebhookUseCase(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockUseCase, slog.New(slog.DiscardHandler))

	s.router.POST("/webhooks/courier", s.handler.Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	payload := []byte(`{"event_type":"delivery.status_changed","delivery_id":"del_789","status":"pickup"}`)

	s.Run("acks a processed event with 204", func() {
		s.mockUseCase.EXPECT().Ingest(gomock.Any(), json.RawMessage(payload)).Return(nil).Times(1)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/courier", payload)
		s.Equal(http.StatusNoContent, w.Code)
		s.Empty(w.Body.String())
	})

	s.Run("acks with 204 even when ingestion fails", func() {
		s.mockUseCase.EXPECT().Ingest(gomock.Any(), json.RawMessage(payload)).
			Return(errors.New("database unavailable")).Times(1)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/courier", payload)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("acks a non-JSON body with 204", func() {
		garbage := []byte("definitely not json")
		s.mockUseCase.EXPECT().Ingest(gomock.Any(), json.RawMessage(garbage)).Return(nil).Times(1)

		w := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/courier", garbage)
		s.Equal(http.StatusNoContent, w.Code)
	})
}
