package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	activityRetentionJob *ActivityRetentionJob
}

// NewJobManager creates a job manager with every background job.
func NewJobManager(
	pruneActivityHandler commands.PruneActivityCommandHandler,
	retention time.Duration,
	retentionSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		activityRetentionJob: NewActivityRetentionJob(pruneActivityHandler, retention, retentionSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.activityRetentionJob.Start(); err != nil {
		return fmt.Errorf("failed to start activity retention job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.activityRetentionJob.Stop()
}
