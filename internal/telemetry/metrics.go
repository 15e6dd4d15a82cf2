package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transition direction labels.
const (
	DirectionForward = "forward"
	DirectionRevert  = "revert"
	DirectionJump    = "jump"
)

// Metrics aggregates the Prometheus counters exported by the service.
// Counters live in a private registry so multiple instances (tests) do not
// collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	OrdersCreated     prometheus.Counter
	OrdersDeleted     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	ChallansGenerated *prometheus.CounterVec
}

// New constructs the metrics set with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "printdesk_orders_created_total",
			Help: "Number of orders created.",
		}),
		OrdersDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "printdesk_orders_deleted_total",
			Help: "Number of orders deleted.",
		}),
		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "printdesk_status_transitions_total",
			Help: "Number of applied status transitions by direction.",
		}, []string{"direction"}),
		ChallansGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "printdesk_challans_generated_total",
			Help: "Number of generated challan documents by type.",
		}, []string{"type"}),
	}
}

// Handler serves the /metrics endpoint for this metrics set.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
