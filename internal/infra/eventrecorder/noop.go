package eventrecorder

import (
	"context"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.BubbleEventRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordEvents(_ context.Context, _ []domain.BubbleEvent) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
