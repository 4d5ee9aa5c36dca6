package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/mlb-daily-stats/internal/platform/logging"
)

type pipelineRunner interface {
	RunAll(ctx context.Context) (RunSummary, error)
}

// Scheduler triggers a full pipeline run after an initial delay and then on a
// fixed interval until its context is cancelled.
type Scheduler struct {
	runner       pipelineRunner
	interval     time.Duration
	initialDelay time.Duration
	logger       *logging.Logger
}

func NewScheduler(runner pipelineRunner, interval, initialDelay time.Duration, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	if initialDelay < 0 {
		initialDelay = 0
	}
	return &Scheduler{
		runner:       runner,
		interval:     interval,
		initialDelay: initialDelay,
		logger:       logger.Named("scheduler"),
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("pipeline scheduler started", "interval", s.interval.String(), "initial_delay", s.initialDelay.String())
	defer s.logger.Info("pipeline scheduler stopped")

	delay := time.NewTimer(s.initialDelay)
	defer delay.Stop()
	select {
	case <-ctx.Done():
		return
	case <-delay.C:
	}
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick only logs failures; scheduled runs have no caller to report to.
func (s *Scheduler) tick(ctx context.Context) {
	summary, err := s.runner.RunAll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.ErrorContext(ctx, "scheduled pipeline run failed", "run_id", summary.RunID, "error", err)
		return
	}
	s.logger.InfoContext(ctx, "scheduled pipeline run completed", "run_id", summary.RunID, "date", summary.Date)
}
