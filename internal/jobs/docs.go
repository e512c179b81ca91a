// Package jobs provides scheduled background tasks for the logistics core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LockerCountReconciliationJob - Recounts lockers per port in the business
// store and rewrites every port counter in the topology store that drifted.
// Counter updates are secondary writes that may fail after the locker
// document was written; this job is what makes the counters eventually
// correct.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(&reconcileHandler, "@every 1m", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from RECONCILE_SCHEDULE and defaults to "@every 1m".
// A pass that is still running when the next one is due is skipped.
//
// # Error Handling
//
// - A failed pass is logged and retried on the next tick
// - Repaired counters are logged at warn level and counted in metrics
// - An invalid schedule fails StartAll
package jobs
