package jobs

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRetentionSchedule runs the retention job once a minute.
const DefaultRetentionSchedule = "@every 1m"

// scheduleParser accepts descriptors (@every 1m, @hourly) and cron
// expressions with or without a leading seconds field.
var scheduleParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ActivityRetentionJob prunes activity entries older than the retention
// window on a cron schedule.
type ActivityRetentionJob struct {
	handler   commands.PruneActivityCommandHandler
	retention time.Duration
	schedule  string
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewActivityRetentionJob creates the job. An empty schedule uses
// DefaultRetentionSchedule.
func NewActivityRetentionJob(
	handler commands.PruneActivityCommandHandler,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *ActivityRetentionJob {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}
	return &ActivityRetentionJob{
		handler:   handler,
		retention: retention,
		schedule:  schedule,
		now:       time.Now,
		cron:      cron.New(cron.WithParser(scheduleParser)),
		logger:    logger.With("component", "activity_retention_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *ActivityRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Activity retention job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce prunes once. Failures are logged; the next tick retries.
func (j *ActivityRetentionJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewPruneActivityCommandForRetention(j.now(), j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid activity retention", "error", err)
		return
	}

	removed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Activity retention job failed", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Pruned activity entries", "removed", removed, "cutoff", cmd.Cutoff())
	}
}

// Stop stops the scheduler and waits for a running prune to finish.
func (j *ActivityRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Activity retention job stopped")
}
