//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"courier-admin/internal/pkg/clock"
	"courier-admin/internal/usecase"
	"courier-admin/internal/usecase/readmodel"
	usecasemock "courier-admin/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookUseCaseTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockEventRepo    *usecasemock.MockWebhookEventRepository
	mockDeliveryRepo *usecasemock.MockDeliveryRepository
	clock            *clock.MockClock
	uc               usecase.WebhookUseCase
}

func (s *WebhookUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockEventRepo = usecasemock.NewMockWebhookEventRepository(s.mockCtrl)
	s.mockDeliveryRepo = usecasemock.NewMockDeliveryRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewWebhookUseCase(s.mockEventRepo, s.mockDeliveryRepo, s.clock, slog.New(slog.DiscardHandler))
}

func (s *WebhookUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookUseCaseSuite(t *testing.T) {
	suite.Run(t, new(WebhookUseCaseTestSuite))
}

func (s *WebhookUseCaseTestSuite) TestIngest_StatusChangedApplied() {
	payload := json.RawMessage(`{
		"event_type": "delivery.status_changed",
		"delivery_id": "del_abc123",
		"status": "dropoff",
		"created": "2025-07-01T11:58:30Z"
	}`)
	receivedAt := s.clock.Now()
	eventAt := time.Date(2025, 7, 1, 11, 58, 30, 0, time.UTC)

	s.mockEventRepo.EXPECT().
		Append(gomock.Any(), "del_abc123", "delivery.status_changed", "dropoff", payload, receivedAt).
		Return(nil).Times(1)
	s.mockDeliveryRepo.EXPECT().
		ApplyStatusEvent(gomock.Any(), "del_abc123", "dropoff", payload, eventAt).
		Return(true, nil).Times(1)

	s.NoError(s.uc.Ingest(context.Background(), payload))
}

func (s *WebhookUseCaseTestSuite) TestIngest_EventTimeDefaultsToReceivedAt() {
	payload := json.RawMessage(`{
		"event_type": "delivery.status_changed",
		"delivery_id": "del_abc123",
		"status": "pickup"
	}`)
	receivedAt := s.clock.Now()

	s.mockEventRepo.EXPECT().
		Append(gomock.Any(), "del_abc123", "delivery.status_changed", "pickup", payload, receivedAt).
		Return(nil).Times(1)
	s.mockDeliveryRepo.EXPECT().
		ApplyStatusEvent(gomock.Any(), "del_abc123", "pickup", payload, receivedAt).
		Return(true, nil).Times(1)

	s.NoError(s.uc.Ingest(context.Background(), payload))
}

func (s *WebhookUseCaseTestSuite) TestIngest_NonStatusEventAuditedOnly() {
	payload := json.RawMessage(`{
		"event_type": "courier.location_update",
		"delivery_id": "del_abc123",
		"status": "pickup"
	}`)

	s.mockEventRepo.EXPECT().
		Append(gomock.Any(), "del_abc123", "courier.location_update", "pickup", payload, s.clock.Now()).
		Return(nil).Times(1)
	// No ApplyStatusEvent expectation: a non-status event must never touch
	// the delivery row.

	s.NoError(s.uc.Ingest(context.Background(), payload))
}

func (s *WebhookUseCaseTestSuite) TestIngest_MissingDeliveryIDAuditedOnly() {
	payload := json.RawMessage(`{
		"event_type": "delivery.status_changed",
		"status": "dropoff"
	}`)

	s.mockEventRepo.EXPECT().
		Append(gomock.Any(), "", "delivery.status_changed", "dropoff", payload, s.clock.Now()).
		Return(nil).Times(1)

	s.NoError(s.uc.Ingest(context.Background(), payload))
}

func (s *WebhookUseCaseTestSuite) TestIngest_UnparseablePayloadStillAppended() {
	payload := json.RawMessage(`this is not json`)

	s.mockEventRepo.EXPECT().
		Append(gomock.Any(), "", "", "", payload, s.clock.Now()).
		Return(nil).Times(1)

	s.NoError(s.uc.Ingest(context.Background(), payload))
}

func (s *WebhookUseCaseTestSuite) TestIngest_StaleOrUnknownEventSkipped() {
	payload := json.RawMessage(`{
		"event_type": "delivery.status_changed",
		"delivery_id": "del_unknown",
		"status": "pickup",
		"created": "2025-07-01T09:00:00Z"
	}`)

	s.mockEventRepo.EXPECT().
		Append(gomock.Any(), "del_unknown", "delivery.status_changed", "pickup", payload, s.clock.Now()).
		Return(nil).Times(1)
	s.mockDeliveryRepo.EXPECT().
		ApplyStatusEvent(gomock.Any(), "del_unknown", "pickup", payload, time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)).
		Return(false, nil).Times(1)

	s.NoError(s.uc.Ingest(context.Background(), payload))
}

func (s *WebhookUseCaseTestSuite) TestIngest_AppendFailureSkipsApply() {
	payload := json.RawMessage(`{
		"event_type": "delivery.status_changed",
		"delivery_id": "del_abc123",
		"status": "dropoff"
	}`)

	s.mockEventRepo.EXPECT().
		Append(gomock.Any(), "del_abc123", "delivery.status_changed", "dropoff", payload, s.clock.Now()).
		Return(errors.New("insert failed")).Times(1)

	err := s.uc.Ingest(context.Background(), payload)
	s.Error(err)
}

func (s *WebhookUseCaseTestSuite) TestListEvents() {
	views := []*readmodel.WebhookEventView{
		{ID: uuid.New(), ProviderDeliveryID: "del_abc123", EventType: "delivery.status_changed", Status: "pickup"},
		{ID: uuid.New(), ProviderDeliveryID: "del_abc123", EventType: "delivery.status_changed", Status: "dropoff"},
	}

	s.mockEventRepo.EXPECT().
		ListByProviderDeliveryID(gomock.Any(), "del_abc123").
		Return(views, nil).Times(1)

	got, err := s.uc.ListEvents(context.Background(), "del_abc123")
	s.NoError(err)
	s.Equal(views, got)
}
