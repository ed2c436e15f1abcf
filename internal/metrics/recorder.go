package metrics

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"linkpulse/internal/config"
)

// CopyFromer is the slice of pgxpool.Pool the recorder writes through.
type CopyFromer interface {
	CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error)
}

type Recorder struct {
	db           CopyFromer
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	http         *batcher[HTTPMetric]
	business     *batcher[BusinessMetric]
	infra        *batcher[InfraMetric]
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewRecorder returns a recorder writing to db. A nil db disables recording.
func NewRecorder(db CopyFromer, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		db:         db,
		logger:     logger,
		cfg:        cfg,
		shutdownCh: make(chan struct{}),
	}
	r.http = newBatcher("http", cfg.BufferSize, cfg.FlushThreshold, logger, r.writeHTTP)
	r.business = newBatcher("business", cfg.BufferSize, cfg.FlushThreshold, logger, r.writeBusiness)
	r.infra = newBatcher("infra", cfg.BufferSize, cfg.FlushThreshold, logger, r.writeInfra)
	return r
}

func (r *Recorder) enabled() bool {
	return r.cfg.Enabled && r.db != nil
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.enabled() {
		return
	}
	r.http.add(m)
}

func (r *Recorder) RecordBusiness(name string, value float64, labels map[string]string) {
	if !r.enabled() {
		return
	}
	r.business.add(BusinessMetric{
		Time:       time.Now(),
		MetricName: name,
		Value:      value,
		Labels:     labels,
	})
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.enabled() {
		return
	}
	r.infra.add(m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled() {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(3)
	go r.http.run(ctx, &r.wg, flushInterval, r.shutdownCh)
	go r.business.run(ctx, &r.wg, flushInterval, r.shutdownCh)
	go r.infra.run(ctx, &r.wg, flushInterval, r.shutdownCh)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

func (r *Recorder) writeHTTP(ctx context.Context, batch []HTTPMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{m.Time, m.Method, m.Path, m.ShortCode, m.StatusCode, m.DurationMs, m.ClientIP, m.Error}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"http_metrics"},
		[]string{"time", "method", "path", "short_code", "status_code", "duration_ms", "client_ip", "error"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *Recorder) writeBusiness(ctx context.Context, batch []BusinessMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		labelsJSON, _ := json.Marshal(m.Labels)
		rows[i] = []any{m.Time, m.MetricName, m.Value, labelsJSON}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"business_metrics"},
		[]string{"time", "metric_name", "value", "labels"},
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *Recorder) writeInfra(ctx context.Context, batch []InfraMetric) error {
	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = []any{
			m.Time, m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax,
			m.CacheHits, m.CacheMisses, m.CacheHitRatio, m.Goroutines, m.HeapAllocMB,
			m.ClickQueueDepth, m.ClicksDropped,
		}
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"infra_metrics"},
		[]string{
			"time", "pool_acquired", "pool_idle", "pool_total", "pool_max",
			"cache_hits", "cache_misses", "cache_hit_ratio", "goroutines", "heap_alloc_mb",
			"click_queue_depth", "clicks_dropped",
		},
		pgx.CopyFromRows(rows),
	)
	return err
}
