package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupExporter installs an in-memory exporter and rebinds the package
// tracer to it. Restores a fresh provider on cleanup.
func setupExporter(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("newsflow")
	t.Cleanup(func() {
		_ = tp.ForceFlush(context.Background())
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		tracer = otel.Tracer("newsflow")
	})
	return exporter
}

func TestMiddleware_CreatesSpanWithNormalizedName(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/articles/65f1a2b3c4d5e6f7a8b9c0d1", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	span := spans[0]
	if span.Name != "GET /articles/:id" {
		t.Errorf("span name = %q, want 'GET /articles/:id'", span.Name)
	}

	foundRawPath := false
	for _, attr := range span.Attributes {
		if attr.Key == "http.path" {
			foundRawPath = true
			if attr.Value.AsString() != "/articles/65f1a2b3c4d5e6f7a8b9c0d1" {
				t.Errorf("http.path = %s, want the raw path", attr.Value.AsString())
			}
		}
	}
	if !foundRawPath {
		t.Error("http.path attribute not found")
	}
}

func TestMiddleware_AddsTraceIDToResponse(t *testing.T) {
	setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	traceID := rr.Header().Get("X-Trace-Id")
	if traceID == "" {
		t.Fatal("X-Trace-Id header not found in response")
	}
	if len(traceID) != 32 {
		t.Errorf("trace ID length = %d, want 32", len(traceID))
	}
}

func TestMiddleware_PropagatesTraceContext(t *testing.T) {
	exporter := setupExporter(t)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator())
	})

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/articles", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if got := spans[0].SpanContext.TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("trace ID = %s, want the propagated one", got)
	}
}

func TestMiddleware_MarksErrorSpansFor5xx(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	req := httptest.NewRequest("GET", "/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}

	foundError := false
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" && attr.Value.AsBool() {
			foundError = true
		}
	}
	if !foundError {
		t.Error("expected error attribute for 5xx response")
	}
}

func TestMiddleware_NoErrorAttributeFor4xx(t *testing.T) {
	exporter := setupExporter(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("GET", "/articles", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	for _, attr := range spans[0].Attributes {
		if attr.Key == "error" {
			t.Error("unexpected error attribute for 4xx response")
		}
	}
}
