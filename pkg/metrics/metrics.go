// Package metrics provides Prometheus metrics for the relay.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors of the relay.
type Metrics struct {
	// WebhookOutcomes counts GitHub webhooks by event kind and outcome.
	WebhookOutcomes *prometheus.CounterVec
	// Deliveries counts outbound chat messages by result (ok, failed).
	Deliveries *prometheus.CounterVec
	// Commands counts inbound chat commands by name.
	Commands *prometheus.CounterVec
	// RegistryMutations counts registry writes by operation and result.
	RegistryMutations *prometheus.CounterVec
	// Bindings reports the number of token bindings currently held.
	Bindings prometheus.Gauge
}

// New creates all collectors and registers them with reg.
// A nil reg yields working but unregistered collectors.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		WebhookOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_webhooks_total",
			Help: "Total number of GitHub webhooks handled, by event kind and outcome",
		}, []string{"kind", "outcome"}),
		Deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_deliveries_total",
			Help: "Total number of chat deliveries attempted, by result",
		}, []string{"result"}),
		Commands: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_chat_commands_total",
			Help: "Total number of chat commands handled, by command",
		}, []string{"command"}),
		RegistryMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "relay_registry_mutations_total",
			Help: "Total number of registry mutations, by operation and result",
		}, []string{"operation", "result"}),
		Bindings: factory.NewGauge(prometheus.GaugeOpts{
			Name: "relay_registry_bindings",
			Help: "Number of token bindings currently held by the registry",
		}),
	}
}
