// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// OrderProgressionJob - advances orders through the early lifecycle stages:
//
//  1. Every thirty seconds it confirms pending orders that have been pending
//     for at least five seconds.
//  2. Every minute it moves confirmed orders to processing once they have
//     been confirmed for at least ten seconds.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceOrdersHandler, logger)
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
// A failing run is logged and the schedule keeps going; one order that cannot
// be advanced never blocks the rest of the scan.
package jobs
