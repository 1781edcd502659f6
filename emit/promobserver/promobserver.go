// Package promobserver exposes sitrep event volume as Prometheus metrics.
package promobserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/regexident/sitrep"
)

// Observer implements sitrep.Observer by incrementing Prometheus
// counters per event kind, with Message events further split by
// priority level.
//
// Metrics exposed, all namespaced "sitrep_":
//   - updates_total (counter): Update events observed.
//   - detachments_total (counter): Detachment events observed.
//   - messages_total (counter, labeled by priority): Message events observed.
//   - generation_overflows_total (counter): GenerationOverflow events observed.
type Observer struct {
	updates     prometheus.Counter
	detachments prometheus.Counter
	messages    *prometheus.CounterVec
	overflows   prometheus.Counter
}

// New creates and registers sitrep's Prometheus metrics against registry.
// A nil registry registers against prometheus.DefaultRegisterer.
func New(registry prometheus.Registerer) *Observer {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Observer{
		updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sitrep",
			Name:      "updates_total",
			Help:      "Total number of Update events observed",
		}),
		detachments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sitrep",
			Name:      "detachments_total",
			Help:      "Total number of Detachment events observed",
		}),
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sitrep",
			Name:      "messages_total",
			Help:      "Total number of Message events observed, by priority",
		}, []string{"priority"}),
		overflows: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "sitrep",
			Name:      "generation_overflows_total",
			Help:      "Total number of GenerationOverflow events observed",
		}),
	}
}

// Observe increments the counter matching event.Kind.
func (o *Observer) Observe(event sitrep.Event) {
	switch event.Kind {
	case sitrep.EventUpdate:
		o.updates.Inc()
	case sitrep.EventDetachment:
		o.detachments.Inc()
	case sitrep.EventMessage:
		o.messages.WithLabelValues(priorityLabel(event.Priority)).Inc()
	case sitrep.EventGenerationOverflow:
		o.overflows.Inc()
	}
}

func priorityLabel(level sitrep.Priority) string {
	switch level {
	case sitrep.Trace:
		return "trace"
	case sitrep.Debug:
		return "debug"
	case sitrep.Info:
		return "info"
	case sitrep.Warn:
		return "warn"
	case sitrep.Error:
		return "error"
	default:
		return "unknown"
	}
}
