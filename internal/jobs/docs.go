// Package jobs provides scheduled background tasks for the kitchen engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order routing service.
//
// # Available Jobs
//
// 1. OrderArchivalJob - Runs every minute to purge orders that were fully
// served more than the retention period ago, keeping the active tables and
// the default station's system-of-record view bounded.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(archiveHandler, retention, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The archival job treats an empty purge as a normal outcome and stays
// silent; every other error is logged.
package jobs
