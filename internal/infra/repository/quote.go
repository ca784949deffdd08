package repository

import (
	"context"
	"encoding/json"
	"errors"

	"courier-admin/internal/domain/quote"
	"courier-admin/internal/infra"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository struct {
	db *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{db: db}
}

const quoteColumns = `id, status, customer_id, warehouse_id, pickup_address, dropoff_address,
	lines, subtotal_cents, fee_cents, provider_quote_id, provider_response, created_at, updated_at`

func (r *QuoteRepository) Create(ctx context.Context, q *quote.Quote) (*readmodel.QuoteView, error) {
	pickup, dropoff, lines, err := encodeQuoteJSON(q)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO quotes (id, status, customer_id, warehouse_id, pickup_address, dropoff_address, lines, subtotal_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+quoteColumns,
		q.ID, string(q.Status), q.CustomerID, q.WarehouseID, pickup, dropoff, lines, q.SubtotalCents,
	)
	view, err := scanQuote(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, infra.WrapRepoErr("quote references unknown account", err, infra.KindForeignKeyViolated)
		}
		return nil, err
	}
	return view, nil
}

func (r *QuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.QuoteView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	return scanQuote(row)
}

// FindEntity rehydrates the domain quote for provider calls and payload
// building, where the entity's behavior matters rather than the view.
func (r *QuoteRepository) FindEntity(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	q := &quote.Quote{
		ID:               view.ID,
		Status:           quote.Status(view.Status),
		CustomerID:       view.CustomerID,
		WarehouseID:      view.WarehouseID,
		PickupAddress:    view.PickupAddress,
		DropoffAddress:   view.DropoffAddress,
		Lines:            view.Lines,
		SubtotalCents:    view.SubtotalCents,
		FeeCents:         view.FeeCents,
		ProviderQuoteID:  view.ProviderQuoteID,
		ProviderResponse: view.ProviderResponse,
	}
	return q, nil
}

func (r *QuoteRepository) List(ctx context.Context) ([]*readmodel.QuoteListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, status, customer_id, warehouse_id, subtotal_cents, fee_cents, created_at
		 FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	defer rows.Close()

	var items []*readmodel.QuoteListItem
	for rows.Next() {
		var li readmodel.QuoteListItem
		if err := rows.Scan(&li.ID, &li.Status, &li.CustomerID, &li.WarehouseID, &li.SubtotalCents, &li.FeeCents, &li.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote", err)
		}
		items = append(items, &li)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	return items, nil
}

// SetProviderQuote persists provider pricing. Status flips to quoted in the
// same statement so the two never diverge.
func (r *QuoteRepository) SetProviderQuote(ctx context.Context, id uuid.UUID, providerQuoteID string, feeCents int64, raw json.RawMessage) (*readmodel.QuoteView, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE quotes
		 SET status = 'quoted', provider_quote_id = $2, fee_cents = $3, provider_response = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+quoteColumns,
		id, providerQuoteID, feeCents, []byte(raw),
	)
	return scanQuote(row)
}

// DeleteDraft removes a quote only while it is still a draft. Quoted quotes
// are kept as the pricing audit trail.
func (r *QuoteRepository) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quotes WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return infra.WrapRepoErr("quote is referenced by a delivery", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete quote", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("draft quote not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func encodeQuoteJSON(q *quote.Quote) (pickup, dropoff, lines []byte, err error) {
	if pickup, err = json.Marshal(q.PickupAddress); err != nil {
		return nil, nil, nil, infra.WrapRepoErr("failed to encode pickup address", err)
	}
	if dropoff, err = json.Marshal(q.DropoffAddress); err != nil {
		return nil, nil, nil, infra.WrapRepoErr("failed to encode dropoff address", err)
	}
	if lines, err = json.Marshal(q.Lines); err != nil {
		return nil, nil, nil, infra.WrapRepoErr("failed to encode quote lines", err)
	}
	return pickup, dropoff, lines, nil
}

func scanQuote(row pgx.Row) (*readmodel.QuoteView, error) {
	var view readmodel.QuoteView
	var pickup, dropoff, lines, providerResp []byte
	err := row.Scan(
		&view.ID, &view.Status, &view.CustomerID, &view.WarehouseID,
		&pickup, &dropoff, &lines, &view.SubtotalCents,
		&view.FeeCents, &view.ProviderQuoteID, &providerResp,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan quote", err)
	}
	if err := decodeQuoteJSON(&view, pickup, dropoff, lines); err != nil {
		return nil, err
	}
	view.ProviderResponse = json.RawMessage(providerResp)
	return &view, nil
}

func decodeQuoteJSON(view *readmodel.QuoteView, pickup, dropoff, lines []byte) error {
	if err := json.Unmarshal(pickup, &view.PickupAddress); err != nil {
		return infra.WrapRepoErr("failed to decode pickup address", err)
	}
	if err := json.Unmarshal(dropoff, &view.DropoffAddress); err != nil {
		return infra.WrapRepoErr("failed to decode dropoff address", err)
	}
	if err := json.Unmarshal(lines, &view.Lines); err != nil {
		return infra.WrapRepoErr("failed to decode quote lines", err)
	}
	return nil
}
