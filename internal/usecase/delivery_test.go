//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/delivery"
	"courier-admin/internal/domain/quote"
	reqdto "courier-admin/internal/handler/dto/request"
	"courier-admin/internal/infra"
	"courier-admin/internal/pkg/clock"
	"courier-admin/internal/usecase"
	"courier-admin/internal/usecase/readmodel"
	"courier-admin/pkg/courier"
	usecasemock "courier-admin/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeliveryUseCaseTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockDeliveryRepo *usecasemock.MockDeliveryRepository
	mockQuoteRepo    *usecasemock.MockQuoteRepository
	mockAccountRepo  *usecasemock.MockAccountRepository
	mockCourier      *usecasemock.MockCourierClient
	clock            *clock.MockClock
	uc               usecase.DeliveryUseCase
}

func (s *DeliveryUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDeliveryRepo = usecasemock.NewMockDeliveryRepository(s.mockCtrl)
	s.mockQuoteRepo = usecasemock.NewMockQuoteRepository(s.mockCtrl)
	s.mockAccountRepo = usecasemock.NewMockAccountRepository(s.mockCtrl)
	s.mockCourier = usecasemock.NewMockCourierClient(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewDeliveryUseCase(s.mockDeliveryRepo, s.mockQuoteRepo, s.mockAccountRepo, s.mockCourier, s.clock)
}

func (s *DeliveryUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeliveryUseCaseSuite(t *testing.T) {
	suite.Run(t, new(DeliveryUseCaseTestSuite))
}

func (s *DeliveryUseCaseTestSuite) pricedQuote(customerID, warehouseID uuid.UUID) *quote.Quote {
	q := quote.New(customerID, warehouseID,
		account.Address{Street: "100 Depot Rd", City: "Springfield", State: "IL", PostalCode: "62701", Country: "US"},
		account.Address{Street: "500 Main St", City: "Springfield", State: "IL", PostalCode: "62704", Country: "US"},
		[]quote.Line{{ItemID: uuid.New(), Name: "Widget", UnitPriceCents: 2500, Quantity: 3, LineTotalCents: 7500}},
		7500,
	)
	q.MarkQuoted("dqt_123", 899, json.RawMessage(`{"id":"dqt_123","fee":899}`))
	return q
}

func (s *DeliveryUseCaseTestSuite) TestCreate_SchedulesWithProvider() {
	customerID := uuid.New()
	warehouseID := uuid.New()
	q := s.pricedQuote(customerID, warehouseID)
	raw := json.RawMessage(`{"id":"del_789","status":"pending"}`)

	s.mockQuoteRepo.EXPECT().FindEntity(gomock.Any(), q.ID).Return(q, nil)
	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), warehouseID).Return(warehouseView(warehouseID), nil)
	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), customerID).Return(customerView(customerID), nil)
	s.mockCourier.EXPECT().CreateDelivery(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload *courier.DeliveryRequest) (*courier.Delivery, error) {
			s.Equal("dqt_123", payload.QuoteID)
			s.Equal("JOB_custom_42", payload.ExternalID)
			return &courier.Delivery{ID: "del_789", Status: "pending", Raw: raw}, nil
		})
	s.mockDeliveryRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *delivery.Delivery) (*readmodel.DeliveryView, error) {
			s.Equal(q.ID, d.QuoteID)
			s.Equal("del_789", d.ProviderDeliveryID)
			s.Equal("JOB_custom_42", d.ExternalID)
			s.Equal("pending", d.Status)
			return &readmodel.DeliveryView{ID: d.ID, ProviderDeliveryID: d.ProviderDeliveryID, Status: d.Status}, nil
		})

	view, err := s.uc.Create(context.Background(), reqdto.CreateDeliveryRequest{
		QuoteID:    q.ID,
		ExternalID: "JOB_custom_42",
	})
	s.NoError(err)
	s.Equal("del_789", view.ProviderDeliveryID)
	s.Equal("pending", view.Status)
}

func (s *DeliveryUseCaseTestSuite) TestCreate_DraftQuoteRejected() {
	customerID := uuid.New()
	warehouseID := uuid.New()
	q := quote.New(customerID, warehouseID,
		account.Address{Street: "100 Depot Rd"}, account.Address{Street: "500 Main St"}, nil, 0)

	s.mockQuoteRepo.EXPECT().FindEntity(gomock.Any(), q.ID).Return(q, nil)
	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), warehouseID).Return(warehouseView(warehouseID), nil)
	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), customerID).Return(customerView(customerID), nil)

	_, err := s.uc.Create(context.Background(), reqdto.CreateDeliveryRequest{QuoteID: q.ID})
	s.ErrorIs(err, delivery.ErrQuoteNotPriced)
}

func (s *DeliveryUseCaseTestSuite) TestCreate_ProviderErrorPassesThrough() {
	customerID := uuid.New()
	warehouseID := uuid.New()
	q := s.pricedQuote(customerID, warehouseID)
	providerErr := &courier.APIError{StatusCode: 400, Body: []byte(`{"code":"delivery_quote_expired"}`)}

	s.mockQuoteRepo.EXPECT().FindEntity(gomock.Any(), q.ID).Return(q, nil)
	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), warehouseID).Return(warehouseView(warehouseID), nil)
	s.mockAccountRepo.EXPECT().FindByID(gomock.Any(), customerID).Return(customerView(customerID), nil)
	s.mockCourier.EXPECT().CreateDelivery(gomock.Any(), gomock.Any()).Return(nil, providerErr)

	_, err := s.uc.Create(context.Background(), reqdto.CreateDeliveryRequest{QuoteID: q.ID})
	var apiErr *courier.APIError
	s.ErrorAs(err, &apiErr)
	s.Equal(providerErr.Body, apiErr.Body)
}

func (s *DeliveryUseCaseTestSuite) TestRefreshStatus_OverwritesFromProvider() {
	id := uuid.New()
	raw := json.RawMessage(`{"id":"del_789","status":"pickup"}`)
	now := s.clock.Now()

	s.mockDeliveryRepo.EXPECT().FindByID(gomock.Any(), id).
		Return(&readmodel.DeliveryView{ID: id, ProviderDeliveryID: "del_789", Status: "pending"}, nil)
	s.mockCourier.EXPECT().GetDelivery(gomock.Any(), "del_789").
		Return(&courier.Delivery{ID: "del_789", Status: "pickup", Raw: raw}, nil)
	s.mockDeliveryRepo.EXPECT().UpdateStatus(gomock.Any(), id, "pickup", raw, now).
		Return(&readmodel.DeliveryView{ID: id, ProviderDeliveryID: "del_789", Status: "pickup", StatusEventAt: &now}, nil)

	view, err := s.uc.RefreshStatus(context.Background(), id)
	s.NoError(err)
	s.Equal("pickup", view.Status)
}

func (s *DeliveryUseCaseTestSuite) TestCancel() {
	id := uuid.New()
	raw := json.RawMessage(`{"id":"del_789","status":"canceled"}`)
	now := s.clock.Now()

	s.mockDeliveryRepo.EXPECT().FindByID(gomock.Any(), id).
		Return(&readmodel.DeliveryView{ID: id, ProviderDeliveryID: "del_789", Status: "pickup"}, nil)
	s.mockCourier.EXPECT().CancelDelivery(gomock.Any(), "del_789").
		Return(&courier.Delivery{ID: "del_789", Status: "canceled", Raw: raw}, nil)
	s.mockDeliveryRepo.EXPECT().UpdateStatus(gomock.Any(), id, "canceled", raw, now).
		Return(&readmodel.DeliveryView{ID: id, ProviderDeliveryID: "del_789", Status: "canceled", StatusEventAt: &now}, nil)

	view, err := s.uc.Cancel(context.Background(), id)
	s.NoError(err)
	s.Equal("canceled", view.Status)
}

func (s *DeliveryUseCaseTestSuite) TestGet_NotFound() {
	id := uuid.New()

	s.mockDeliveryRepo.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("delivery not found", nil, infra.KindNotFound))

	_, err := s.uc.Get(context.Background(), id)
	s.ErrorIs(err, usecase.ErrDeliveryNotFound)
}
