//go:build !gcloud

package eventrecorder

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

const bubbleEventMeasurement = "bubble_event"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.BubbleEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "bubble event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, bubble event recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "bubble event recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordEvents(ctx context.Context, events []domain.BubbleEvent) error {
	if len(events) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(events))
	for _, ev := range events {
		points = append(points, eventPoint(ev))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		slog.WarnContext(ctx, "failed to write bubble events to InfluxDB",
			slog.String("error", err.Error()),
			slog.Int("event_count", len(events)),
		)
	}

	return nil
}

func eventPoint(ev domain.BubbleEvent) *write.Point {
	sessionID := ev.SessionID
	if sessionID == "" {
		sessionID = "none"
	}

	return influxdb2.NewPoint(
		bubbleEventMeasurement,
		map[string]string{
			"session_id": sessionID,
			"kind":       string(ev.Kind),
			"category":   ev.Category.String(),
		},
		map[string]any{
			"festival_id":     ev.FestivalID,
			"notification_id": ev.NotificationID,
		},
		ev.OccurredAt,
	)
}

func (r *influxDBRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
