package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/delivery"
	reqdto "courier-admin/internal/handler/dto/request"
	"courier-admin/internal/infra"
	"courier-admin/internal/pkg/clock"
	"courier-admin/internal/pkg/errs"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrDeliveryNotFound = errors.New("delivery not found")

type DeliveryRepository interface {
	Create(ctx context.Context, d *delivery.Delivery) (*readmodel.DeliveryView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error)
	List(ctx context.Context) ([]*readmodel.DeliveryView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, raw json.RawMessage, eventAt time.Time) (*readmodel.DeliveryView, error)
	ApplyStatusEvent(ctx context.Context, providerDeliveryID, status string, raw json.RawMessage, eventAt time.Time) (bool, error)
}

type DeliveryUseCase interface {
	Create(ctx context.Context, req reqdto.CreateDeliveryRequest) (*readmodel.DeliveryView, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error)
	List(ctx context.Context) ([]*readmodel.DeliveryView, error)
	RefreshStatus(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error)
	Cancel(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error)
}

type deliveryUseCaseImpl struct {
	deliveryRepo DeliveryRepository
	quoteRepo    QuoteRepository
	accountRepo  AccountRepository
	courier      CourierClient
	clock        clock.Clock
}

func NewDeliveryUseCase(
	deliveryRepo DeliveryRepository,
	quoteRepo QuoteRepository,
	accountRepo AccountRepository,
	courier CourierClient,
	clock clock.Clock,
) DeliveryUseCase {
	return &deliveryUseCaseImpl{
		deliveryRepo: deliveryRepo,
		quoteRepo:    quoteRepo,
		accountRepo:  accountRepo,
		courier:      courier,
		clock:        clock,
	}
}

// Create schedules a delivery with the provider from a priced quote and
// records the provider's answer. Provider errors pass through unwrapped.
func (d *deliveryUseCaseImpl) Create(ctx context.Context, req reqdto.CreateDeliveryRequest) (*readmodel.DeliveryView, error) {
	q, err := d.quoteRepo.FindEntity(ctx, req.QuoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, errs.Wrap(err, "failed to find quote")
	}

	warehouse, err := d.loadAccount(ctx, q.WarehouseID)
	if err != nil {
		return nil, err
	}
	customer, err := d.loadAccount(ctx, q.CustomerID)
	if err != nil {
		return nil, err
	}

	payload, err := delivery.BuildPayload(q, warehouse, customer, delivery.Overrides{
		ExternalID:   req.ExternalID,
		ManifestSize: req.ManifestSize,
	}, d.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := d.courier.CreateDelivery(ctx, payload)
	if err != nil {
		return nil, err
	}

	entity := delivery.New(q.ID, q.ProviderQuoteID, created.ID, payload.ExternalID, created.Status, created.Raw)
	view, err := d.deliveryRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist delivery")
	}
	return view, nil
}

func (d *deliveryUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error) {
	view, err := d.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDeliveryNotFound
		}
		return nil, errs.Wrap(err, "failed to find delivery")
	}
	return view, nil
}

func (d *deliveryUseCaseImpl) List(ctx context.Context) ([]*readmodel.DeliveryView, error) {
	views, err := d.deliveryRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list deliveries")
	}
	return views, nil
}

// RefreshStatus pulls the provider's current view of the delivery and
// overwrites the tracked status. The read is authoritative, so the ordering
// watermark advances to now.
func (d *deliveryUseCaseImpl) RefreshStatus(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error) {
	view, err := d.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	current, err := d.courier.GetDelivery(ctx, view.ProviderDeliveryID)
	if err != nil {
		return nil, err
	}

	updated, err := d.deliveryRepo.UpdateStatus(ctx, id, current.Status, current.Raw, d.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist refreshed status")
	}
	return updated, nil
}

func (d *deliveryUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error) {
	view, err := d.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	canceled, err := d.courier.CancelDelivery(ctx, view.ProviderDeliveryID)
	if err != nil {
		return nil, err
	}

	updated, err := d.deliveryRepo.UpdateStatus(ctx, id, canceled.Status, canceled.Raw, d.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist canceled status")
	}
	return updated, nil
}

func (d *deliveryUseCaseImpl) loadAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	view, err := d.accountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to find account")
	}
	role, err := account.NewRole(view.Role)
	if err != nil {
		return nil, err
	}
	return &account.Account{
		ID:      view.ID,
		Role:    role,
		Name:    view.Name,
		Phone:   view.Phone,
		Address: view.Address,
	}, nil
}
