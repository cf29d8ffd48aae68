// Package scheduler manages the bot's background jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	useruc "deskbot/internal/application/user/usecases"
	"deskbot/internal/shared/biztime"
	"deskbot/internal/shared/logger"
)

// Manager owns a single gocron scheduler instance for all recurring jobs.
type Manager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewManager creates a Manager with jobs anchored to the business timezone.
func NewManager(log logger.Interface) (*Manager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &Manager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterProfileSyncJob schedules the hourly sweep that refreshes stored
// user profiles against the transport. Singleton mode keeps a slow sweep
// from overlapping with the next tick.
func (m *Manager) RegisterProfileSyncJob(job useruc.SyncProfilesExecutor) error {
	_, err := m.scheduler.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			m.runProfileSync(ctx, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("user", "profile-sync"),
		gocron.WithName("profile-sync"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered profile sync job", "interval", "1h")
	return nil
}

func (m *Manager) runProfileSync(ctx context.Context, job useruc.SyncProfilesExecutor) {
	startTime := biztime.NowUTC()

	result, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("profile sync failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Updated > 0 || result.Failed > 0 {
		m.logger.Infow("profile sync completed",
			"scanned", result.Scanned,
			"updated", result.Updated,
			"failed", result.Failed,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("profile sync completed with no changes",
			"scanned", result.Scanned,
			"duration", time.Since(startTime),
		)
	}
}

// Start begins executing registered jobs. Calling it twice is a no-op.
func (m *Manager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "job_count", len(m.scheduler.Jobs()))
}

// Stop shuts the scheduler down and waits for running jobs to complete.
func (m *Manager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler stopped")
	return nil
}

// IsStarted reports whether the scheduler is running.
func (m *Manager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
