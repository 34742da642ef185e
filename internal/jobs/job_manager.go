package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the schedules of the background jobs.
type Config struct {
	NotificationPurgeSchedule string
	NotificationRetention     time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationPurgeJob *NotificationPurgeJob
}

func NewJobManager(purger NotificationPurger, cfg Config, logger *slog.Logger) *JobManager {
	return &JobManager{
		notificationPurgeJob: NewNotificationPurgeJob(
			purger,
			cfg.NotificationPurgeSchedule,
			cfg.NotificationRetention,
			logger,
		),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationPurgeJob.Stop()
}
