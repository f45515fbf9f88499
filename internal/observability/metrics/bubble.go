package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	bubbleMeterName = "bubble.scheduler"
)

type BubbleMetrics struct {
	bubblesAppended metric.Int64Counter
	bubblesExpired  metric.Int64Counter
	bubblesVisible  metric.Int64UpDownCounter
	timersCancelled metric.Int64Counter
	transitions     metric.Int64Counter
	pinToggles      metric.Int64Counter
}

func NewBubbleMetrics() (*BubbleMetrics, error) {
	meter := otel.Meter(bubbleMeterName)

	bubblesAppended, err := meter.Int64Counter(
		"bubble_appended_total",
		metric.WithDescription("Total number of bubbles appended to the store"),
		metric.WithUnit("{bubble}"),
	)
	if err != nil {
		return nil, err
	}

	bubblesExpired, err := meter.Int64Counter(
		"bubble_expired_total",
		metric.WithDescription("Total number of bubbles removed by their display timer"),
		metric.WithUnit("{bubble}"),
	)
	if err != nil {
		return nil, err
	}

	bubblesVisible, err := meter.Int64UpDownCounter(
		"bubble_visible",
		metric.WithDescription("Bubbles currently in the store"),
		metric.WithUnit("{bubble}"),
	)
	if err != nil {
		return nil, err
	}

	timersCancelled, err := meter.Int64Counter(
		"bubble_timers_cancelled_total",
		metric.WithDescription("Pending bubble timers revoked on teardown"),
		metric.WithUnit("{timer}"),
	)
	if err != nil {
		return nil, err
	}

	transitions, err := meter.Int64Counter(
		"bubble_context_transitions_total",
		metric.WithDescription("Festival detail context transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	pinToggles, err := meter.Int64Counter(
		"bubble_pin_toggles_total",
		metric.WithDescription("Pin toggles by resulting state"),
		metric.WithUnit("{toggle}"),
	)
	if err != nil {
		return nil, err
	}

	return &BubbleMetrics{
		bubblesAppended: bubblesAppended,
		bubblesExpired:  bubblesExpired,
		bubblesVisible:  bubblesVisible,
		timersCancelled: timersCancelled,
		transitions:     transitions,
		pinToggles:      pinToggles,
	}, nil
}

func (m *BubbleMetrics) RecordBubbleAppended(ctx context.Context, category string) {
	m.bubblesAppended.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
	))
	m.bubblesVisible.Add(ctx, 1)
}

func (m *BubbleMetrics) RecordBubbleExpired(ctx context.Context, category string) {
	m.bubblesExpired.Add(ctx, 1, metric.WithAttributes(
		attribute.String("category", category),
	))
	m.bubblesVisible.Add(ctx, -1)
}

func (m *BubbleMetrics) RecordBubblesCleared(ctx context.Context, count int) {
	if count == 0 {
		return
	}
	m.bubblesVisible.Add(ctx, -int64(count))
}

func (m *BubbleMetrics) RecordTimersCancelled(ctx context.Context, reason string, count int) {
	if count == 0 {
		return
	}
	m.timersCancelled.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

func (m *BubbleMetrics) RecordTransition(ctx context.Context, to, reason string) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("to", to),
		attribute.String("reason", reason),
	))
}

func (m *BubbleMetrics) RecordPinToggle(ctx context.Context, pinned bool) {
	m.pinToggles.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("pinned", pinned),
	))
}
