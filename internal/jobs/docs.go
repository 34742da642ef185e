// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3.
//
// NotificationPurgeJob deletes read notifications once they are older than
// the configured retention. Unread notifications are never purged.
//
//	jobManager := jobs.NewJobManager(notifier, jobs.Config{
//		NotificationPurgeSchedule: "0 0 3 * * *",
//		NotificationRetention:     30 * 24 * time.Hour,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// A failed purge is logged and retried on the next tick.
package jobs
