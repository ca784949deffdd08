package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// ProviderRequests counts outbound courier API calls by operation and outcome.
	ProviderRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "courier_provider_requests_total", Help: "Outbound courier provider API calls."},
		[]string{"operation", "outcome"},
	)

	// TokenRefreshes counts courier access-token exchanges.
	TokenRefreshes = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "courier_token_refreshes_total", Help: "Courier access token exchanges performed."},
	)

	// WebhookEvents counts ingested provider webhook events by type and outcome.
	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "courier_webhook_events_total", Help: "Ingested courier webhook events."},
		[]string{"event_type", "outcome"},
	)
)

var regOnce sync.Once

// Register registers all collectors on the service registry.
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(ProviderRequests)
		Registry.MustRegister(TokenRefreshes)
		Registry.MustRegister(WebhookEvents)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
