package jobs

import (
	"context"
	"log/slog"
	"time"

	"galapagos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation once a minute.
const DefaultReconcileSchedule = "@every 1m"

// runTimeout bounds a single reconciliation pass.
const runTimeout = 30 * time.Second

// LockerCountReconciler is satisfied by commands.ReconcileLockerCountsCommandHandler.
type LockerCountReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileLockerCountsCommand) (int, error)
}

// LockerCountReconciliationJob periodically rewrites port locker counters
// that drifted from the locker documents.
type LockerCountReconciliationJob struct {
	reconciler LockerCountReconciler
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewLockerCountReconciliationJob creates the job. schedule accepts a
// standard five-field cron expression, an optional leading seconds field or a
// descriptor such as "@every 30s"; empty means DefaultReconcileSchedule.
func NewLockerCountReconciliationJob(
	reconciler LockerCountReconciler,
	schedule string,
	logger *slog.Logger,
) *LockerCountReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	parser := cron.NewParser(
		cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	return &LockerCountReconciliationJob{
		reconciler: reconciler,
		schedule:   schedule,
		cron: cron.New(
			cron.WithParser(parser),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "locker_count_reconciliation_job"),
	}
}

// Start schedules the job. An invalid schedule is returned as an error.
func (j *LockerCountReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Locker count reconciliation job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single reconciliation pass and reports the number of
// repaired counters. Failures are logged, never returned: the next pass
// retries from scratch.
func (j *LockerCountReconciliationJob) RunOnce(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	repaired, err := j.reconciler.Handle(ctx, commands.NewReconcileLockerCountsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Locker count reconciliation failed", "error", err)
		return 0
	}
	if repaired > 0 {
		j.logger.WarnContext(ctx, "Locker counters repaired", "repaired", repaired)
	}
	return repaired
}

// Stop unschedules the job and waits for a running pass to finish.
func (j *LockerCountReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Locker count reconciliation job stopped")
}
