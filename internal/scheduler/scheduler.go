package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/jobs"
	"mobility-rental-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) (*Scheduler, error) {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	// Drop returned rentals past retention
	if _, err := s.cron.AddFunc(cfg.PruneHistory, s.jobs.PruneReturnedHistory); err != nil {
		logger.Error("Failed to register PruneReturnedHistory job", "error", err)
		return errs.Wrap(err, "failed to register PruneReturnedHistory")
	}

	// Log overdue rentals
	if _, err := s.cron.AddFunc(cfg.ReportOverdue, s.jobs.ReportOverdueRentals); err != nil {
		logger.Error("Failed to register ReportOverdueRentals job", "error", err)
		return errs.Wrap(err, "failed to register ReportOverdueRentals")
	}

	logger.Info("All cron jobs registered successfully", "prune_history", cfg.PruneHistory, "report_overdue", cfg.ReportOverdue)
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// JobCount returns the number of registered jobs
func (s *Scheduler) JobCount() int {
	return len(s.cron.Entries())
}
