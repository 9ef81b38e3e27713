// Package jobs provides scheduled background tasks for the butler robot
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the mission loop.
//
// # Available Jobs
//
// 1. TelemetryJob - Runs every second to log the robot's state, goal and pose while a mission is active
// 2. DeliveryArchivalJob - Runs every five seconds to drain finished deliveries from the journal into the database
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(control, archiveHandler, logger)
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
// - Telemetry is best-effort and silent while the robot is idle
// - Archival logs failures; failed batches stay journaled and are retried
// - Failed job starts will stop any already running jobs
package jobs
