//go:build gcloud

package eventrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	OccurredAt     time.Time `bigquery:"occurred_at"`
	SessionID      string    `bigquery:"session_id"`
	FestivalID     int64     `bigquery:"festival_id"`
	Kind           string    `bigquery:"kind"`
	NotificationID int64     `bigquery:"notification_id"`
	Category       string    `bigquery:"category"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.BubbleEventRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "bubble event recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, bubble event recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, bubble event recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "bubble event recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordEvents(ctx context.Context, events []domain.BubbleEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(events))
	for _, ev := range events {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:     now,
			OccurredAt:     ev.OccurredAt,
			SessionID:      ev.SessionID,
			FestivalID:     int64(ev.FestivalID),
			Kind:           string(ev.Kind),
			NotificationID: ev.NotificationID,
			Category:       ev.Category.String(),
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert bubble events to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("event_count", len(events)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
