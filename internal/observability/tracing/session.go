package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const sessionTracerName = "github.com/KasumiMercury/alo-bubble-scheduler/internal/service/session"

func SessionTracer() trace.Tracer {
	return otel.Tracer(sessionTracerName)
}

func StartTransitionSpan(ctx context.Context, transition string, festivalID int) (context.Context, trace.Span) {
	return SessionTracer().Start(ctx, "session."+transition,
		trace.WithAttributes(
			attribute.String("transition", transition),
			attribute.Int("festival.id", festivalID),
		),
	)
}

func RecordTransitionResult(span trace.Span, from, to, sessionID string, cancelledTimers, clearedBubbles int) {
	span.SetAttributes(
		attribute.String("context.from", from),
		attribute.String("context.to", to),
		attribute.String("session.id", sessionID),
		attribute.Int("teardown.cancelled_timers", cancelledTimers),
		attribute.Int("teardown.cleared_bubbles", clearedBubbles),
	)
	span.SetStatus(codes.Ok, "")
}

func StartPinToggleSpan(ctx context.Context, performerID int) (context.Context, trace.Span) {
	return SessionTracer().Start(ctx, "session.toggle_pin",
		trace.WithAttributes(
			attribute.Int("performer.id", performerID),
		),
	)
}

func RecordPinToggleResult(span trace.Span, pinned, alertScheduled bool, err error) {
	span.SetAttributes(
		attribute.Bool("pin.pinned", pinned),
		attribute.Bool("pin.alert_scheduled", alertScheduled),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return SessionTracer().Start(ctx, "pins.redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}
