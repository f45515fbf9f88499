package metrics

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					totals[m.Name] += dp.Value
				}
			}
		}
	}
	return totals
}

func TestBubbleMetrics_Record(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewBubbleMetrics()
	if err != nil {
		t.Fatalf("NewBubbleMetrics() error: %v", err)
	}

	ctx := context.Background()
	m.RecordBubbleAppended(ctx, "giveaway")
	m.RecordBubbleAppended(ctx, "location")
	m.RecordBubbleAppended(ctx, "delay")
	m.RecordBubbleExpired(ctx, "giveaway")
	m.RecordBubblesCleared(ctx, 2)
	m.RecordTimersCancelled(ctx, "leave", 3)
	m.RecordTimersCancelled(ctx, "leave", 0)
	m.RecordTransition(ctx, "active", "enter")

	totals := collect(t, reader)

	want := map[string]int64{
		"bubble_appended_total":            3,
		"bubble_expired_total":             1,
		"bubble_visible":                   0,
		"bubble_timers_cancelled_total":    3,
		"bubble_context_transitions_total": 1,
	}
	for name, v := range want {
		if totals[name] != v {
			t.Errorf("%s = %d, want %d", name, totals[name], v)
		}
	}
}
