// Package jobs provides scheduled background tasks for the quotation service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(pruneActivityHandler, 24*time.Hour, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// ActivityRetentionJob removes activity log entries older than the configured
// retention. Its schedule accepts cron descriptors such as "@every 1m" as well
// as five or six field cron expressions.
//
// # Error Handling
//
// A failed prune is logged and retried on the next tick. An invalid schedule
// makes StartAll fail.
package jobs
