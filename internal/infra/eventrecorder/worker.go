package eventrecorder

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

const shutdownFlushTimeout = 5 * time.Second

// Worker decouples the session controller from the recorder backend. Emit
// never blocks; events are batched and written by Run.
type Worker struct {
	recorder  domain.BubbleEventRecorder
	events    chan domain.BubbleEvent
	batchSize int
	interval  time.Duration
	dropped   atomic.Int64
	done      chan struct{}
}

func NewWorker(recorder domain.BubbleEventRecorder, cfg *Config) *Worker {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	interval := cfg.FlushInterval
	if interval <= 0 {
		interval = defaultFlushInterval
	}

	return &Worker{
		recorder:  recorder,
		events:    make(chan domain.BubbleEvent, bufferSize),
		batchSize: batchSize,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Emit queues ev, dropping it when the buffer is full.
func (w *Worker) Emit(ev domain.BubbleEvent) {
	select {
	case w.events <- ev:
	default:
		w.dropped.Add(1)
	}
}

func (w *Worker) Dropped() int64 {
	return w.dropped.Load()
}

// Done is closed once Run has drained the queue and flushed the recorder.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Run writes batches until ctx is cancelled, then drains whatever is queued.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	slog.InfoContext(ctx, "bubble event worker started",
		slog.Duration("interval", w.interval),
		slog.Int("batch_size", w.batchSize),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	batch := make([]domain.BubbleEvent, 0, w.batchSize)

	for {
		select {
		case ev := <-w.events:
			batch = append(batch, ev)
			if len(batch) >= w.batchSize {
				batch = w.write(ctx, batch)
			}
		case <-ticker.C:
			batch = w.write(ctx, batch)
		case <-ctx.Done():
			w.shutdown(batch)
			return
		}
	}
}

func (w *Worker) shutdown(batch []domain.BubbleEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownFlushTimeout)
	defer cancel()

drain:
	for {
		select {
		case ev := <-w.events:
			batch = append(batch, ev)
		default:
			break drain
		}
	}

	w.write(ctx, batch)

	if err := w.recorder.Flush(ctx); err != nil {
		slog.WarnContext(ctx, "failed to flush bubble event recorder",
			slog.String("error", err.Error()),
		)
	}

	slog.InfoContext(ctx, "bubble event worker stopped",
		slog.Int64("dropped", w.Dropped()),
	)
}

func (w *Worker) write(ctx context.Context, batch []domain.BubbleEvent) []domain.BubbleEvent {
	if len(batch) == 0 {
		return batch
	}

	if err := w.recorder.RecordEvents(ctx, batch); err != nil {
		slog.WarnContext(ctx, "failed to record bubble events",
			slog.String("error", err.Error()),
			slog.Int("event_count", len(batch)),
		)
	}

	return make([]domain.BubbleEvent, 0, w.batchSize)
}
