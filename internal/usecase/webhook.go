package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"courier-admin/internal/metrics"
	"courier-admin/internal/pkg/clock"
	"courier-admin/internal/pkg/errs"
	"courier-admin/internal/usecase/readmodel"
)

// statusChangedEvent is the only event type that mutates a delivery; every
// other type is recorded for audit and otherwise ignored.
const statusChangedEvent = "delivery.status_changed"

type WebhookEventRepository interface {
	Append(ctx context.Context, providerDeliveryID, eventType, status string, payload json.RawMessage, receivedAt time.Time) error
	ListByProviderDeliveryID(ctx context.Context, providerDeliveryID string) ([]*readmodel.WebhookEventView, error)
}

type WebhookUseCase interface {
	Ingest(ctx context.Context, payload json.RawMessage) error
	ListEvents(ctx context.Context, providerDeliveryID string) ([]*readmodel.WebhookEventView, error)
}

type webhookUseCaseImpl struct {
	eventRepo    WebhookEventRepository
	deliveryRepo DeliveryRepository
	clock        clock.Clock
	logger       *slog.Logger
}

func NewWebhookUseCase(
	eventRepo WebhookEventRepository,
	deliveryRepo DeliveryRepository,
	clock clock.Clock,
	logger *slog.Logger,
) WebhookUseCase {
	return &webhookUseCaseImpl{
		eventRepo:    eventRepo,
		deliveryRepo: deliveryRepo,
		clock:        clock,
		logger:       logger,
	}
}

// webhookEnvelope is a best-effort reading of the provider's payload. The
// full payload is stored opaque regardless of what parses here.
type webhookEnvelope struct {
	EventType  string     `json:"event_type"`
	DeliveryID string     `json:"delivery_id"`
	Status     string     `json:"status"`
	Created    *time.Time `json:"created"`
}

// Ingest records an inbound provider webhook. The audit append happens for
// every payload, parseable or not; the status update is conditional on the
// event type and on the event being newer than the last one applied. Errors
// from either step are logged and swallowed so the provider always gets an
// ack and never retries into a loop.
func (w *webhookUseCaseImpl) Ingest(ctx context.Context, payload json.RawMessage) error {
	receivedAt := w.clock.Now()

	var env webhookEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		w.logger.Warn("webhook payload is not a JSON object", "error", err)
		env = webhookEnvelope{}
	}

	if err := w.eventRepo.Append(ctx, env.DeliveryID, env.EventType, env.Status, payload, receivedAt); err != nil {
		metrics.WebhookEvents.WithLabelValues(env.EventType, "error").Inc()
		w.logger.Error("failed to record webhook event", "error", err)
		return errs.Wrap(err, "failed to record webhook event")
	}

	if env.EventType != statusChangedEvent || env.DeliveryID == "" || env.Status == "" {
		metrics.WebhookEvents.WithLabelValues(env.EventType, "audited").Inc()
		return nil
	}

	eventAt := receivedAt
	if env.Created != nil {
		eventAt = *env.Created
	}

	applied, err := w.deliveryRepo.ApplyStatusEvent(ctx, env.DeliveryID, env.Status, payload, eventAt)
	if err != nil {
		metrics.WebhookEvents.WithLabelValues(env.EventType, "error").Inc()
		w.logger.Error("failed to apply webhook status event",
			"provider_delivery_id", env.DeliveryID, "error", err)
		return errs.Wrap(err, "failed to apply webhook status event")
	}
	if !applied {
		// Unknown delivery or an event older than the one already applied.
		metrics.WebhookEvents.WithLabelValues(env.EventType, "skipped").Inc()
		w.logger.Info("webhook status event not applied",
			"provider_delivery_id", env.DeliveryID, "status", env.Status, "event_at", eventAt)
		return nil
	}

	metrics.WebhookEvents.WithLabelValues(env.EventType, "applied").Inc()
	w.logger.Info("webhook status event applied",
		"provider_delivery_id", env.DeliveryID, "status", env.Status, "event_at", eventAt)
	return nil
}

func (w *webhookUseCaseImpl) ListEvents(ctx context.Context, providerDeliveryID string) ([]*readmodel.WebhookEventView, error) {
	views, err := w.eventRepo.ListByProviderDeliveryID(ctx, providerDeliveryID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list webhook events")
	}
	return views, nil
}
