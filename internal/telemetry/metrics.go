package telemetry

import (
	"context"
	"errors"
	"net/http"

	dom "github.com/cuihairu/labcatalog/internal/ports"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	OperationKey = attribute.Key("catalog.operation")
	OutcomeKey   = attribute.Key("catalog.outcome")
)

// Outcome labels.
const (
	OutcomeOK         = "ok"
	OutcomeNotFound   = "not_found"
	OutcomeValidation = "validation"
	OutcomeConflict   = "conflict"
	OutcomeError      = "error"
)

// CatalogMetrics counts catalog operations by name and outcome.
type CatalogMetrics struct {
	operations metric.Int64Counter
	failures   metric.Int64Counter
}

func NewCatalogMetrics(meter metric.Meter) (*CatalogMetrics, error) {
	ops, err := meter.Int64Counter("catalog.operations",
		metric.WithDescription("Catalog operations by name and outcome"),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("catalog.operation.failures",
		metric.WithDescription("Catalog operations that returned an unexpected error"),
		metric.WithUnit("{operation}"))
	if err != nil {
		return nil, err
	}
	return &CatalogMetrics{operations: ops, failures: failures}, nil
}

// Outcome classifies err for the outcome attribute.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, dom.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, dom.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, dom.ErrConflict):
		return OutcomeConflict
	}
	return OutcomeError
}

// RecordOp counts one operation and annotates the active span.
func (m *CatalogMetrics) RecordOp(ctx context.Context, op string, err error) {
	outcome := Outcome(err)
	attrs := metric.WithAttributes(OperationKey.String(op), OutcomeKey.String(outcome))
	m.operations.Add(ctx, 1, attrs)
	if outcome == OutcomeError {
		m.failures.Add(ctx, 1, metric.WithAttributes(OperationKey.String(op)))
	}
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent(op, trace.WithAttributes(OutcomeKey.String(outcome)))
		if outcome == OutcomeError {
			span.RecordError(err)
		}
	}
}

// HTTPMiddleware wraps a go-zero handler with otelhttp server spans.
func HTTPMiddleware(operation string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		h := otelhttp.NewHandler(next, operation,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}))
		return h.ServeHTTP
	}
}
