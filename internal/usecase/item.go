package usecase

import (
	"context"
	"errors"

	"courier-admin/internal/domain/item"
	reqdto "courier-admin/internal/handler/dto/request"
	"courier-admin/internal/infra"
	"courier-admin/internal/pkg/errs"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("item not found")

type ItemRepository interface {
	Create(ctx context.Context, it *item.Item) (*readmodel.ItemView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error)
	List(ctx context.Context) ([]*readmodel.ItemView, error)
	Update(ctx context.Context, it *item.Item) (*readmodel.ItemView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ItemUseCase interface {
	Create(ctx context.Context, req reqdto.CreateItemRequest) (*readmodel.ItemView, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.ItemView, error)
	List(ctx context.Context) ([]*readmodel.ItemView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateItemRequest) (*readmodel.ItemView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemUseCaseImpl struct {
	itemRepo ItemRepository
}

func NewItemUseCase(itemRepo ItemRepository) ItemUseCase {
	return &itemUseCaseImpl{itemRepo: itemRepo}
}

func (i *itemUseCaseImpl) Create(ctx context.Context, req reqdto.CreateItemRequest) (*readmodel.ItemView, error) {
	it, err := item.New(req.Name, req.UnitPriceCents, req.QuantityOnHand)
	if err != nil {
		return nil, err
	}

	view, err := i.itemRepo.Create(ctx, it)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create item")
	}
	return view, nil
}

func (i *itemUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.ItemView, error) {
	view, err := i.itemRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to find item")
	}
	return view, nil
}

func (i *itemUseCaseImpl) List(ctx context.Context) ([]*readmodel.ItemView, error) {
	views, err := i.itemRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list items")
	}
	return views, nil
}

func (i *itemUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateItemRequest) (*readmodel.ItemView, error) {
	it, err := item.New(req.Name, req.UnitPriceCents, req.QuantityOnHand)
	if err != nil {
		return nil, err
	}
	it.ID = id

	view, err := i.itemRepo.Update(ctx, it)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, errs.Wrap(err, "failed to update item")
	}
	return view, nil
}

func (i *itemUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := i.itemRepo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrItemNotFound
		}
		return errs.Wrap(err, "failed to delete item")
	}
	return nil
}
