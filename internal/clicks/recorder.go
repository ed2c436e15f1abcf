package clicks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"

	"linkpulse/internal/config"
	"linkpulse/internal/domain"
)

// Recorder persists clicks off the redirect path. Submissions go onto a
// bounded queue served by a fixed pool of workers.
type Recorder struct {
	enricher  *Enricher
	store     Store
	publisher Publisher
	cfg       *config.RecorderConfig
	logger    *slog.Logger

	queue   chan domain.ClickRequest
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool

	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewRecorder builds a recorder. publisher may be nil.
func NewRecorder(enricher *Enricher, store Store, publisher Publisher, cfg *config.RecorderConfig, logger *slog.Logger) *Recorder {
	ctx, cancel := context.WithCancel(context.Background())
	return &Recorder{
		enricher:  enricher,
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		queue:     make(chan domain.ClickRequest, max(cfg.QueueSize, 1)),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (r *Recorder) Start() {
	workers := max(r.cfg.Workers, 1)
	r.wg.Add(workers)
	for range workers {
		go r.work()
	}
	r.logger.Info("click recorder started",
		slog.Int("workers", workers),
		slog.Int("queue_size", cap(r.queue)))
}

// RecordAsync never blocks. A full queue or a closed recorder drops the click.
func (r *Recorder) RecordAsync(req domain.ClickRequest) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.drop(req, "recorder closed")
		return
	}

	select {
	case r.queue <- req:
	default:
		r.drop(req, "queue full")
	}
}

func (r *Recorder) drop(req domain.ClickRequest, reason string) {
	r.dropped.Add(1)
	r.logger.Warn("dropping click",
		slog.String("reason", reason),
		slog.String("short_code", req.ShortCode))
}

func (r *Recorder) work() {
	defer r.wg.Done()
	for req := range r.queue {
		r.processQueued(req)
	}
}

// processQueued keeps the worker alive when enrichment or storage panics.
// The click is counted as dropped.
func (r *Recorder) processQueued(req domain.ClickRequest) {
	defer func() {
		if v := recover(); v != nil {
			r.dropped.Add(1)
			r.logger.Error("click processing panicked",
				slog.String("short_code", req.ShortCode),
				slog.Any("panic", v))
		}
	}()
	_ = r.Process(r.ctx, req)
}

// Process enriches and stores a single click. Persistence is retried with a
// fixed delay; publishing happens once, after a successful insert.
func (r *Recorder) Process(ctx context.Context, req domain.ClickRequest) error {
	click := r.enricher.Enrich(ctx, req)

	err := retry.Do(
		func() error {
			return r.store.Insert(ctx, click)
		},
		retry.Attempts(r.cfg.Attempts),
		retry.Delay(r.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			r.logger.Warn("click insert failed, retrying",
				slog.String("click_id", click.ID.String()),
				slog.Uint64("attempt", uint64(n+1)),
				slog.String("error", err.Error()))
		}),
	)
	if err != nil {
		r.logger.Error("failed to record click",
			slog.String("click_id", click.ID.String()),
			slog.String("short_code", req.ShortCode),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to record click: %w", err)
	}

	r.logger.Debug("click recorded",
		slog.String("click_id", click.ID.String()),
		slog.String("short_code", req.ShortCode),
		slog.String("country", click.Country),
		slog.String("browser", click.Browser))

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, click); err != nil {
			r.logger.Warn("failed to publish click event",
				slog.String("click_id", click.ID.String()),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

// Close stops intake and waits for the queue to drain. Work still pending
// after the shutdown timeout is abandoned.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.queue)
		r.mu.Unlock()

		done := make(chan struct{})
		go func() {
			r.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			r.logger.Info("click recorder drained")
		case <-time.After(r.cfg.ShutdownTimeout):
			r.logger.Warn("click recorder shutdown timed out",
				slog.Int("pending", len(r.queue)))
			r.cancel()
			<-done
		}
		r.cancel()
	})
}

func (r *Recorder) QueueDepth() int {
	return len(r.queue)
}

func (r *Recorder) Dropped() int64 {
	return r.dropped.Load()
}
