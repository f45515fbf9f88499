package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=bubble_event_recorder.go -destination=bubble_event_recorder_mock.go -package=domain

type BubbleEventKind string

const (
	BubbleEventAppended BubbleEventKind = "appended"
	BubbleEventExpired  BubbleEventKind = "expired"
	BubbleEventCleared  BubbleEventKind = "cleared"
)

type BubbleEvent struct {
	SessionID      string
	FestivalID     int
	Kind           BubbleEventKind
	NotificationID int64
	Category       Category
	OccurredAt     time.Time
}

type BubbleEventRecorder interface {
	RecordEvents(ctx context.Context, events []BubbleEvent) error
	Flush(ctx context.Context) error
	Close() error
}
