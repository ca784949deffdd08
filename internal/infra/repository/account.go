package repository

import (
	"context"
	"encoding/json"
	"errors"

	"courier-admin/internal/domain/account"
	"courier-admin/internal/infra"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, role, name, phone, address, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) (*readmodel.AccountView, error) {
	addr, err := json.Marshal(acc.Address)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode account address", err)
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO accounts (id, role, name, phone, address)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+accountColumns,
		acc.ID, acc.Role.String(), acc.Name, acc.Phone, addr,
	)
	return scanAccount(row)
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AccountView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) List(ctx context.Context) ([]*readmodel.AccountView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accounts", err)
	}
	defer rows.Close()

	var views []*readmodel.AccountView
	for rows.Next() {
		view, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list accounts", err)
	}
	return views, nil
}

func (r *AccountRepository) Update(ctx context.Context, acc *account.Account) (*readmodel.AccountView, error) {
	addr, err := json.Marshal(acc.Address)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode account address", err)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE accounts
		 SET role = $2, name = $3, phone = $4, address = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING `+accountColumns,
		acc.ID, acc.Role.String(), acc.Name, acc.Phone, addr,
	)
	return scanAccount(row)
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return infra.WrapRepoErr("account is referenced by a quote", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("account not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanAccount(row pgx.Row) (*readmodel.AccountView, error) {
	var view readmodel.AccountView
	var addr []byte
	err := row.Scan(&view.ID, &view.Role, &view.Name, &view.Phone, &addr, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan account", err)
	}
	if err := json.Unmarshal(addr, &view.Address); err != nil {
		return nil, infra.WrapRepoErr("failed to decode account address", err)
	}
	return &view, nil
}
