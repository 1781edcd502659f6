// Package otelobserver adapts sitrep events onto OpenTelemetry spans.
package otelobserver

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/regexident/sitrep"
)

// Observer implements sitrep.Observer by creating one span per event.
// Each event is a point in time rather than a duration, so its span is
// started and ended immediately; consumers that want duration spans
// should wrap the producing code directly instead of relying on this
// sink.
type Observer struct {
	tracer trace.Tracer
}

// New returns an Observer that records events as spans on tracer, e.g.
// otel.Tracer("sitrep").
func New(tracer trace.Tracer) *Observer {
	return &Observer{tracer: tracer}
}

// Observe starts and immediately ends a span named after event.Kind,
// annotated with the event's fields.
func (o *Observer) Observe(event sitrep.Event) {
	ctx := context.Background()
	_, span := o.tracer.Start(ctx, spanName(event.Kind))
	defer span.End()

	span.SetAttributes(
		attribute.Int64("sitrep.node_id", int64(event.ID)),
		attribute.String("sitrep.event_kind", spanName(event.Kind)),
	)

	switch event.Kind {
	case sitrep.EventMessage:
		span.SetAttributes(
			attribute.String("sitrep.message", event.Message),
			attribute.Int("sitrep.priority", int(event.Priority)),
		)
		if event.Priority == sitrep.Error {
			span.SetStatus(codes.Error, event.Message)
			span.RecordError(fmt.Errorf("%s", event.Message))
		}
	case sitrep.EventGenerationOverflow:
		span.SetStatus(codes.Error, "generation counter overflow")
	}
}

func spanName(kind sitrep.EventKind) string {
	switch kind {
	case sitrep.EventUpdate:
		return "sitrep.update"
	case sitrep.EventMessage:
		return "sitrep.message"
	case sitrep.EventDetachment:
		return "sitrep.detachment"
	case sitrep.EventGenerationOverflow:
		return "sitrep.generation_overflow"
	default:
		return "sitrep.unknown"
	}
}
