package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// batcher buffers items on a channel and hands them to write in batches,
// either when threshold items are pending or when the ticker fires.
type batcher[T any] struct {
	name      string
	ch        chan T
	threshold int
	write     func(ctx context.Context, batch []T) error
	logger    *slog.Logger
}

func newBatcher[T any](name string, size, threshold int, logger *slog.Logger, write func(context.Context, []T) error) *batcher[T] {
	return &batcher[T]{
		name:      name,
		ch:        make(chan T, size),
		threshold: max(threshold, 1),
		write:     write,
		logger:    logger,
	}
}

func (b *batcher[T]) add(item T) {
	select {
	case b.ch <- item:
	default:
		b.logger.Warn("metrics buffer full, dropping metric", slog.String("kind", b.name))
	}
}

func (b *batcher[T]) run(ctx context.Context, wg *sync.WaitGroup, interval time.Duration, shutdown <-chan struct{}) {
	defer wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, b.threshold)

	for {
		select {
		case <-ctx.Done():
			b.drain(batch)
			return
		case <-shutdown:
			b.drain(batch)
			return
		case m := <-b.ch:
			batch = append(batch, m)
			if len(batch) >= b.threshold {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (b *batcher[T]) drain(batch []T) {
	for {
		select {
		case m := <-b.ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				b.flush(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (b *batcher[T]) flush(ctx context.Context, batch []T) {
	if err := b.write(ctx, batch); err != nil {
		b.logger.Error("failed to write metrics batch",
			slog.String("kind", b.name),
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}
