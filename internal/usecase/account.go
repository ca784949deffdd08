package usecase

import (
	"context"
	"errors"

	"courier-admin/internal/domain/account"
	reqdto "courier-admin/internal/handler/dto/request"
	"courier-admin/internal/infra"
	"courier-admin/internal/pkg/errs"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountReferenced = errors.New("account is referenced by a quote")
)

type AccountRepository interface {
	Create(ctx context.Context, acc *account.Account) (*readmodel.AccountView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AccountView, error)
	List(ctx context.Context) ([]*readmodel.AccountView, error)
	Update(ctx context.Context, acc *account.Account) (*readmodel.AccountView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountUseCase interface {
	Create(ctx context.Context, req reqdto.CreateAccountRequest) (*readmodel.AccountView, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.AccountView, error)
	List(ctx context.Context) ([]*readmodel.AccountView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAccountRequest) (*readmodel.AccountView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountUseCaseImpl struct {
	accountRepo AccountRepository
}

func NewAccountUseCase(accountRepo AccountRepository) AccountUseCase {
	return &accountUseCaseImpl{accountRepo: accountRepo}
}

func (a *accountUseCaseImpl) Create(ctx context.Context, req reqdto.CreateAccountRequest) (*readmodel.AccountView, error) {
	role, err := account.NewRole(req.Role)
	if err != nil {
		return nil, err
	}
	acc, err := account.New(role, req.Name, req.Phone, req.Address.ToDomain())
	if err != nil {
		return nil, err
	}

	view, err := a.accountRepo.Create(ctx, acc)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create account")
	}
	return view, nil
}

func (a *accountUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.AccountView, error) {
	view, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to find account")
	}
	return view, nil
}

func (a *accountUseCaseImpl) List(ctx context.Context) ([]*readmodel.AccountView, error) {
	views, err := a.accountRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list accounts")
	}
	return views, nil
}

func (a *accountUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAccountRequest) (*readmodel.AccountView, error) {
	role, err := account.NewRole(req.Role)
	if err != nil {
		return nil, err
	}
	acc, err := account.New(role, req.Name, req.Phone, req.Address.ToDomain())
	if err != nil {
		return nil, err
	}
	acc.ID = id

	view, err := a.accountRepo.Update(ctx, acc)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Wrap(err, "failed to update account")
	}
	return view, nil
}

func (a *accountUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := a.accountRepo.Delete(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAccountNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrAccountReferenced
		}
		return errs.Wrap(err, "failed to delete account")
	}
	return nil
}
