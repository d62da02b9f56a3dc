package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	dom "github.com/cuihairu/labcatalog/internal/ports"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestOutcome(t *testing.T) {
	cases := map[string]error{
		OutcomeOK:         nil,
		OutcomeNotFound:   dom.NotFoundf("Genre with id 1 not found"),
		OutcomeValidation: dom.Invalid("price", "Price must be non-negative"),
		OutcomeConflict:   dom.Conflictf("taken"),
		OutcomeError:      errors.New("disk full"),
	}
	for want, err := range cases {
		if got := Outcome(err); got != want {
			t.Fatalf("Outcome(%v) = %s, want %s", err, got, want)
		}
	}
}

func TestRecordOpCounts(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := NewCatalogMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	m.RecordOp(ctx, "genre.create", nil)
	m.RecordOp(ctx, "genre.create", nil)
	m.RecordOp(ctx, "genre.create", dom.Conflictf("taken"))
	m.RecordOp(ctx, "genre.list", errors.New("boom"))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value(OperationKey)
				outcome, _ := dp.Attributes.Value(OutcomeKey)
				got[md.Name+"|"+op.AsString()+"|"+outcome.AsString()] += dp.Value
			}
		}
	}
	want := map[string]int64{
		"catalog.operations|genre.create|ok":       2,
		"catalog.operations|genre.create|conflict": 1,
		"catalog.operations|genre.list|error":      1,
		"catalog.operation.failures|genre.list|":   1,
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %d, want %d (all: %v)", k, got[k], v, got)
		}
	}
}

func TestHTTPMiddlewarePassesThrough(t *testing.T) {
	h := HTTPMiddleware("catalog")(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/lab2/genres", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("unexpected status %d", rec.Code)
	}
}

func TestProviderDisabledExporters(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{ServiceName: "test", SamplingRatio: 1})
	if err != nil {
		t.Fatal(err)
	}
	if p.TracerProvider != nil || p.MeterProvider != nil {
		t.Fatalf("expected no exporters when disabled")
	}
	p.Metrics.RecordOp(context.Background(), "genre.get", nil)
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatal(err)
	}
}
