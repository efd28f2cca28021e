// Package scheduler
package scheduler

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/nmzabith/thermal-printer-label-app-sub001/app/middleware"
	"github.com/nmzabith/thermal-printer-label-app-sub001/models"
	"github.com/nmzabith/thermal-printer-label-app-sub001/repository"
)

// MaintenanceScheduler periodically expires stale sessions and fails print jobs
// that never made it to a printer. Jobs are committed before dispatch, so a
// crash between commit and dispatch leaves them pending forever without this.
type MaintenanceScheduler struct {
	sessionRepo repository.OperatorSessionRepository
	jobRepo     repository.PrintJobRepository
	logger      *log.Logger
	interval    time.Duration

	// Pending jobs older than this are considered abandoned
	stalePendingAfter time.Duration

	logFile *os.File
}

func NewMaintenanceScheduler(
	sessionRepo repository.OperatorSessionRepository,
	jobRepo repository.PrintJobRepository,
	logger *log.Logger,
	interval time.Duration,
	stalePendingAfter time.Duration,
) *MaintenanceScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	if stalePendingAfter <= 0 {
		stalePendingAfter = 10 * time.Minute
	}

	s := &MaintenanceScheduler{
		sessionRepo:       sessionRepo,
		jobRepo:           jobRepo,
		logger:            logger,
		interval:          interval,
		stalePendingAfter: stalePendingAfter,
	}

	// Initialize scheduler-specific logger (to stdout and persistent file)
	if s.logger == nil {
		if err := s.initSchedulerLogger(); err != nil {
			// Fallback to default stdout logger if file logger init fails
			s.logger = log.Default()
			s.logger.Printf("scheduler: failed to initialize file logger: %v", err)
		}
	}

	return s
}

// initSchedulerLogger configures a logger that writes to both stdout and a persistent file under data/ (or /data)
func (s *MaintenanceScheduler) initSchedulerLogger() error {
	// Prefer relative data/ then fallback to /data for containerized environments
	candidates := []string{
		filepath.Join("data"),
		"/data",
	}
	var logPath string
	for _, dir := range candidates {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			continue
		}
		logPath = filepath.Join(dir, "scheduler.log")
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			continue
		}
		s.logFile = f
		s.logger = log.New(io.MultiWriter(os.Stdout, f), "", log.LstdFlags)
		return nil
	}
	s.logger = log.Default()
	return os.ErrNotExist
}

// Start launches the maintenance loop and returns a cancel function.
func (s *MaintenanceScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				if s.logFile != nil {
					_ = s.logFile.Close()
				}
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *MaintenanceScheduler) runOnce(ctx context.Context) {
	if err := s.sessionRepo.CleanupExpiredSessions(ctx); err != nil {
		s.logger.Printf("scheduler: cleanup expired sessions failed: %v", err)
	}

	failed, err := s.failStalePendingJobs(ctx)
	if err != nil {
		s.logger.Printf("scheduler: fail stale pending jobs failed: %v", err)
		return
	}
	if failed > 0 {
		s.logger.Printf("scheduler: marked %d stale pending print jobs as failed", failed)
	}
}

// failStalePendingJobs marks pending jobs older than the cutoff as failed so
// operators see an actionable terminal status instead of a job stuck forever.
func (s *MaintenanceScheduler) failStalePendingJobs(ctx context.Context) (int, error) {
	pending := models.PrintJobStatusPending
	cutoff := time.Now().UTC().Add(-s.stalePendingAfter)
	filter := models.PrintJobFilter{
		Status:        &pending,
		CreatedBefore: &cutoff,
	}

	jobs, err := s.jobRepo.ByFilter(ctx, filter, "created_at ASC", 100, 0)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, job := range jobs {
		msg := "abandoned before dispatch"
		if err := s.jobRepo.UpdateStatus(ctx, job.ID, models.PrintJobStatusFailed, &msg); err != nil {
			s.logger.Printf("scheduler: mark job id=%d failed: %v", job.ID, err)
			continue
		}
		middleware.RecordPrintJob(models.PrintJobStatusFailed.String())
		failed++
	}
	return failed, nil
}
