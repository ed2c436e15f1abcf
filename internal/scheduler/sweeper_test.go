package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpulse/internal/config"
)

type countingSweeper struct {
	calls atomic.Int32
	err   error
}

func (s *countingSweeper) SweepExpired(context.Context) (int, error) {
	s.calls.Add(1)
	return 2, s.err
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsOnStartup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sw := &countingSweeper{}
	s := New(sw, &config.SchedulerConfig{Enabled: true, SweepSpec: "@every 4h", RunOnStartup: true}, discard())
	require.NoError(t, s.Start(ctx))

	assert.Eventually(t, func() bool { return sw.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sw := &countingSweeper{}
	s := New(sw, &config.SchedulerConfig{Enabled: true, SweepSpec: "@every 1s"}, discard())
	require.NoError(t, s.Start(ctx))

	assert.Eventually(t, func() bool { return sw.calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
}

func TestScheduler_InvalidSpec(t *testing.T) {
	s := New(&countingSweeper{}, &config.SchedulerConfig{Enabled: true, SweepSpec: "not a schedule"}, discard())
	assert.Error(t, s.Start(context.Background()))
}

func TestScheduler_Disabled(t *testing.T) {
	sw := &countingSweeper{}
	s := New(sw, &config.SchedulerConfig{Enabled: false, SweepSpec: "@every 1s", RunOnStartup: true}, discard())
	require.NoError(t, s.Start(context.Background()))

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, sw.calls.Load())
}

func TestSweep_ErrorIsLogged(t *testing.T) {
	sw := &countingSweeper{err: errors.New("db down")}
	s := New(sw, &config.SchedulerConfig{Enabled: true, SweepSpec: "@every 4h"}, discard())

	s.Sweep(context.Background())
	assert.Equal(t, int32(1), sw.calls.Load())
}

func TestSweep_SkipsCancelledContext(t *testing.T) {
	sw := &countingSweeper{}
	s := New(sw, &config.SchedulerConfig{Enabled: true, SweepSpec: "@every 4h"}, discard())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Sweep(ctx)
	assert.Zero(t, sw.calls.Load())
}
