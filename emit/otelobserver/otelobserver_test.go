package otelobserver

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/regexident/sitrep"
)

// TestObserveRecordsSpanPerEvent verifies each Observe call produces
// exactly one ended span named after the event kind.
func TestObserveRecordsSpanPerEvent(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer provider.Shutdown(context.Background()) //nolint:errcheck

	obs := New(provider.Tracer("sitrep-test"))

	obs.Observe(sitrep.Event{Kind: sitrep.EventUpdate, ID: 7})
	obs.Observe(sitrep.Event{Kind: sitrep.EventMessage, ID: 7, Message: "disk full", Priority: sitrep.Error})

	spans := exporter.GetSpans()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Name != "sitrep.update" {
		t.Fatalf("expected span name sitrep.update, got %q", spans[0].Name)
	}
	if spans[1].Name != "sitrep.message" {
		t.Fatalf("expected span name sitrep.message, got %q", spans[1].Name)
	}
}
