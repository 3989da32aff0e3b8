package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sellersage/listing-grader/internal/metrics"
)

const staleJobThreshold = time.Hour

// Scheduler manages the periodic tracked-listing refresh and full
// rescore jobs, recording each run in the job_runs table.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler that runs engine tasks on a schedule.
func NewScheduler(
	eng *Engine,
	refreshInterval time.Duration,
	rescoreInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+refreshInterval.String(),
		s.runTrackedRefresh,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(
		"@every "+rescoreInterval.String(),
		s.runRescore,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start recovers job runs left behind by a crashed process, then begins
// running scheduled tasks.
func (s *Scheduler) Start() {
	recovered, err := s.engine.store.RecoverStaleJobRuns(context.Background(), staleJobThreshold)
	if err != nil {
		s.log.Error("stale job recovery failed", "error", err)
	} else if recovered > 0 {
		s.log.Warn("recovered stale job runs", "count", recovered)
	}

	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runTrackedRefresh() {
	s.runJob("tracked_refresh", func(ctx context.Context) (int, error) {
		result, err := s.engine.RefreshTracked(ctx)
		if result == nil {
			return 0, err
		}
		return result.Refreshed, err
	})
}

func (s *Scheduler) runRescore() {
	s.runJob("rescore", func(ctx context.Context) (int, error) {
		return s.engine.RescoreAll(ctx, 0)
	})
}

// runJob wraps a job with run bookkeeping: a job_runs row opened at
// start and completed with status, error text, and affected rows.
func (s *Scheduler) runJob(name string, fn func(ctx context.Context) (int, error)) {
	ctx := context.Background()
	start := time.Now()

	s.log.Info("scheduled job starting", "job", name)

	runID, err := s.engine.store.InsertJobRun(ctx, name)
	if err != nil {
		s.log.Error("recording job start failed", "job", name, "error", err)
	}

	rows, jobErr := fn(ctx)

	status := "succeeded"
	errText := ""
	if jobErr != nil {
		status = "failed"
		errText = jobErr.Error()
		s.log.Error("scheduled job failed", "job", name, "error", jobErr)
	} else {
		s.log.Info("scheduled job completed",
			"job", name, "rows", rows, "duration", time.Since(start))
	}

	if runID != "" {
		if err := s.engine.store.CompleteJobRun(ctx, runID, status, errText, rows); err != nil {
			s.log.Error("recording job completion failed", "job", name, "error", err)
		}
	}

	metrics.JobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}
