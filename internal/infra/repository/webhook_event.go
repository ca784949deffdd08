package repository

import (
	"context"
	"encoding/json"
	"time"

	"courier-admin/internal/infra"
	"courier-admin/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WebhookEventRepository is an append-only audit log of everything the
// provider posts to us, including payloads we could not interpret.
type WebhookEventRepository struct {
	db *pgxpool.Pool
}

func NewWebhookEventRepository(db *pgxpool.Pool) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

func (r *WebhookEventRepository) Append(ctx context.Context, providerDeliveryID, eventType, status string, payload json.RawMessage, receivedAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO webhook_events (id, provider_delivery_id, event_type, status, payload, received_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), providerDeliveryID, eventType, status, []byte(payload), receivedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append webhook event", err)
	}
	return nil
}

func (r *WebhookEventRepository) ListByProviderDeliveryID(ctx context.Context, providerDeliveryID string) ([]*readmodel.WebhookEventView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, provider_delivery_id, event_type, status, payload, received_at
		 FROM webhook_events
		 WHERE provider_delivery_id = $1
		 ORDER BY received_at ASC`,
		providerDeliveryID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook events", err)
	}
	defer rows.Close()

	var views []*readmodel.WebhookEventView
	for rows.Next() {
		var view readmodel.WebhookEventView
		var payload []byte
		if err := rows.Scan(&view.ID, &view.ProviderDeliveryID, &view.EventType, &view.Status, &payload, &view.ReceivedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook event", err)
		}
		view.Payload = json.RawMessage(payload)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook events", err)
	}
	return views, nil
}
