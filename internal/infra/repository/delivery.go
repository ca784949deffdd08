package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courier-admin/internal/domain/delivery"
	"courier-admin/internal/infra"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliveryRepository struct {
	db *pgxpool.Pool
}

func NewDeliveryRepository(db *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

const deliveryColumns = `id, quote_id, provider_quote_id, provider_delivery_id, external_id,
	status, status_event_at, provider_response, created_at, updated_at`

func (r *DeliveryRepository) Create(ctx context.Context, d *delivery.Delivery) (*readmodel.DeliveryView, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO deliveries (id, quote_id, provider_quote_id, provider_delivery_id, external_id, status, provider_response)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+deliveryColumns,
		d.ID, d.QuoteID, d.ProviderQuoteID, d.ProviderDeliveryID, d.ExternalID, d.Status, []byte(d.ProviderResponse),
	)
	view, err := scanDelivery(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, infra.WrapRepoErr("delivery references unknown quote", err, infra.KindForeignKeyViolated)
		}
		return nil, err
	}
	return view, nil
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.DeliveryView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id)
	return scanDelivery(row)
}

func (r *DeliveryRepository) List(ctx context.Context) ([]*readmodel.DeliveryView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deliveries", err)
	}
	defer rows.Close()

	var views []*readmodel.DeliveryView
	for rows.Next() {
		view, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list deliveries", err)
	}
	return views, nil
}

// UpdateStatus overwrites the tracked status from an authoritative provider
// read (refresh or cancel). eventAt becomes the new ordering watermark.
func (r *DeliveryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, raw json.RawMessage, eventAt time.Time) (*readmodel.DeliveryView, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE deliveries
		 SET status = $2, provider_response = $3, status_event_at = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING `+deliveryColumns,
		id, status, []byte(raw), eventAt,
	)
	return scanDelivery(row)
}

// ApplyStatusEvent applies a webhook status change keyed by the provider's
// delivery id, but only when the event is newer than the last one applied.
// Returns false without error when no delivery matches or the event is stale.
func (r *DeliveryRepository) ApplyStatusEvent(ctx context.Context, providerDeliveryID, status string, raw json.RawMessage, eventAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE deliveries
		 SET status = $2, provider_response = $3, status_event_at = $4, updated_at = now()
		 WHERE provider_delivery_id = $1
		   AND (status_event_at IS NULL OR status_event_at < $4)`,
		providerDeliveryID, status, []byte(raw), eventAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to apply status event", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanDelivery(row pgx.Row) (*readmodel.DeliveryView, error) {
	var view readmodel.DeliveryView
	var providerResp []byte
	err := row.Scan(
		&view.ID, &view.QuoteID, &view.ProviderQuoteID, &view.ProviderDeliveryID, &view.ExternalID,
		&view.Status, &view.StatusEventAt, &providerResp,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("delivery not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan delivery", err)
	}
	view.ProviderResponse = json.RawMessage(providerResp)
	return &view, nil
}
