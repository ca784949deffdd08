package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/domain/quote"
	reqdto "courier-admin/internal/handler/dto/request"
	"courier-admin/internal/infra"
	"courier-admin/internal/pkg/errs"
	"courier-admin/internal/usecase/readmodel"
	"courier-admin/pkg/courier"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteReferenced    = errors.New("quote is referenced by a delivery")
	ErrCustomerRole       = errors.New("customer account must have the CUSTOMER role")
	ErrWarehouseRole      = errors.New("warehouse account must have the WAREHOUSE role")
	ErrQuoteAlreadyPriced = errors.New("quote already priced by provider")
)

type QuoteRepository interface {
	Create(ctx context.Context, q *quote.Quote) (*readmodel.QuoteView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.QuoteView, error)
	FindEntity(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
	List(ctx context.Context) ([]*readmodel.QuoteListItem, error)
	SetProviderQuote(ctx context.Context, id uuid.UUID, providerQuoteID string, feeCents int64, raw json.RawMessage) (*readmodel.QuoteView, error)
	DeleteDraft(ctx context.Context, id uuid.UUID) error
}

// CourierClient is the provider surface the usecase layer depends on.
type CourierClient interface {
	RequestQuote(ctx context.Context, pickupAddress, dropoffAddress string) (*courier.Quote, error)
	CreateDelivery(ctx context.Context, req *courier.DeliveryRequest) (*courier.Delivery, error)
	GetDelivery(ctx context.Context, deliveryID string) (*courier.Delivery, error)
	CancelDelivery(ctx context.Context, deliveryID string) (*courier.Delivery, error)
}

type QuoteUseCase interface {
	Create(ctx context.Context, req reqdto.CreateQuoteRequest) (*readmodel.QuoteView, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.QuoteView, error)
	List(ctx context.Context) ([]*readmodel.QuoteListItem, error)
	RequestProviderQuote(ctx context.Context, id uuid.UUID) (*readmodel.QuoteView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type quoteUseCaseImpl struct {
	quoteRepo   QuoteRepository
	accountRepo AccountRepository
	itemRepo    ItemRepository
	courier     CourierClient
}

func NewQuoteUseCase(
	quoteRepo QuoteRepository,
	accountRepo AccountRepository,
	itemRepo ItemRepository,
	courier CourierClient,
) QuoteUseCase {
	return &quoteUseCaseImpl{
		quoteRepo:   quoteRepo,
		accountRepo: accountRepo,
		itemRepo:    itemRepo,
		courier:     courier,
	}
}

// Create composes a draft quote. Pickup snapshots the warehouse address and
// dropoff the customer address; later account edits do not touch the quote.
func (q *quoteUseCaseImpl) Create(ctx context.Context, req reqdto.CreateQuoteRequest) (*readmodel.QuoteView, error) {
	customer, err := q.accountRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to find customer")
	}
	if customer.Role != account.RoleCustomer.String() {
		return nil, ErrCustomerRole
	}

	warehouse, err := q.accountRepo.FindByID(ctx, req.WarehouseID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to find warehouse")
	}
	if warehouse.Role != account.RoleWarehouse.String() {
		return nil, ErrWarehouseRole
	}

	requested := req.RequestedLines()
	ids := make([]uuid.UUID, len(requested))
	for i, line := range requested {
		ids[i] = line.ItemID
	}
	catalog, err := q.itemRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load quote items")
	}

	lines, subtotal, err := quote.ComposeLines(requested, catalog)
	if err != nil {
		return nil, err
	}

	draft := quote.New(customer.ID, warehouse.ID, warehouse.Address, customer.Address, lines, subtotal)

	view, err := q.quoteRepo.Create(ctx, draft)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create quote")
	}
	return view, nil
}

func (q *quoteUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.QuoteView, error) {
	view, err := q.quoteRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, errs.Wrap(err, "failed to find quote")
	}
	return view, nil
}

func (q *quoteUseCaseImpl) List(ctx context.Context) ([]*readmodel.QuoteListItem, error) {
	items, err := q.quoteRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list quotes")
	}
	return items, nil
}

// RequestProviderQuote asks the courier to price the quote's pickup/dropoff
// pair and persists the result. Provider errors pass through unwrapped so
// the handler can relay the provider's response body verbatim.
func (q *quoteUseCaseImpl) RequestProviderQuote(ctx context.Context, id uuid.UUID) (*readmodel.QuoteView, error) {
	entity, err := q.quoteRepo.FindEntity(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, errs.Wrap(err, "failed to find quote")
	}
	if entity.IsQuoted() {
		return nil, ErrQuoteAlreadyPriced
	}

	providerQuote, err := q.courier.RequestQuote(ctx,
		entity.PickupAddress.RenderLine(),
		entity.DropoffAddress.RenderLine(),
	)
	if err != nil {
		return nil, err
	}

	view, err := q.quoteRepo.SetProviderQuote(ctx, id, providerQuote.ID, providerQuote.FeeCents, providerQuote.Raw)
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist provider quote")
	}
	return view, nil
}

func (q *quoteUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := q.quoteRepo.DeleteDraft(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrQuoteNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrQuoteReferenced
		}
		return errs.Wrap(err, "failed to delete quote")
	}
	return nil
}
