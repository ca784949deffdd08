package repository

import (
	"context"
	"errors"

	"courier-admin/internal/domain/item"
	"courier-admin/internal/infra"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, name, unit_price_cents, quantity_on_hand, created_at, updated_at`

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (*readmodel.ItemView, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO items (id, name, unit_price_cents, quantity_on_hand)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+itemColumns,
		it.ID, it.Name, it.UnitPriceCents, it.QuantityOnHand,
	)
	return scanItem(row)
}

func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ItemView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	return scanItem(row)
}

// FindByIDs loads the catalog snapshot for quote composition. Missing ids are
// simply absent from the result; the composer decides how to treat them.
func (r *ItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, unit_price_cents, quantity_on_hand FROM items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load items by ids", err)
	}
	defer rows.Close()

	var catalog []*item.Item
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPriceCents, &it.QuantityOnHand); err != nil {
			return nil, infra.WrapRepoErr("failed to scan item", err)
		}
		catalog = append(catalog, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to load items by ids", err)
	}
	return catalog, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]*readmodel.ItemView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	var views []*readmodel.ItemView
	for rows.Next() {
		view, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	return views, nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) (*readmodel.ItemView, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE items
		 SET name = $2, unit_price_cents = $3, quantity_on_hand = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+itemColumns,
		it.ID, it.Name, it.UnitPriceCents, it.QuantityOnHand,
	)
	return scanItem(row)
}

func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanItem(row pgx.Row) (*readmodel.ItemView, error) {
	var view readmodel.ItemView
	err := row.Scan(&view.ID, &view.Name, &view.UnitPriceCents, &view.QuantityOnHand, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan item", err)
	}
	return &view, nil
}
