package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"linkpulse/internal/config"
)

// Sweeper deactivates links whose expiry has passed.
type Sweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

type Scheduler struct {
	c       *cron.Cron
	cfg     *config.SchedulerConfig
	sweeper Sweeper
	logger  *slog.Logger
	timeout time.Duration
}

func New(sweeper Sweeper, cfg *config.SchedulerConfig, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		c:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		cfg:     cfg,
		sweeper: sweeper,
		logger:  logger,
		timeout: 5 * time.Minute,
	}
}

// Start registers the sweep and runs the cron loop until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("expiry sweep disabled")
		return nil
	}

	if _, err := s.c.AddFunc(s.cfg.SweepSpec, func() { s.Sweep(ctx) }); err != nil {
		return err
	}
	s.c.Start()
	s.logger.Info("expiry sweep scheduled", slog.String("schedule", s.cfg.SweepSpec))

	if s.cfg.RunOnStartup {
		go s.Sweep(ctx)
	}

	go func() {
		<-ctx.Done()
		<-s.c.Stop().Done()
	}()
	return nil
}

func (s *Scheduler) Sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.sweeper.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		return
	}
	s.logger.Info("expiry sweep finished",
		slog.Int("deactivated", n),
		slog.Duration("took", time.Since(start)))
}
