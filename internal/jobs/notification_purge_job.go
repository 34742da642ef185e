package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// NotificationPurger deletes read notifications created before cutoff.
type NotificationPurger interface {
	PurgeRead(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationPurgeJob periodically removes read notifications older than the
// retention window.
type NotificationPurgeJob struct {
	purger    NotificationPurger
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
	now       func() time.Time
}

// NewNotificationPurgeJob creates the retention job. schedule is a six-field
// cron expression (seconds first).
func NewNotificationPurgeJob(
	purger NotificationPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationPurgeJob {
	return &NotificationPurgeJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "notification_purge_job"),
		now:       time.Now,
	}
}

// Start registers the purge on its schedule and starts the scheduler.
func (j *NotificationPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Run performs a single purge.
func (j *NotificationPurgeJob) Run(ctx context.Context) {
	cutoff := j.now().Add(-j.retention)

	deleted, err := j.purger.PurgeRead(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification purge failed", "error", err)
		return
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Purged read notifications", "deleted", deleted, "cutoff", cutoff)
	}
}

// Stop stops the scheduler, waiting for a running purge to finish.
func (j *NotificationPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification purge job stopped")
}
