package jobs

import (
	"fmt"
	"log/slog"

	"butler/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	telemetryJob        *TelemetryJob
	deliveryArchivalJob *DeliveryArchivalJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the status provider and command handler as dependencies to wire up
// the job execution.
func NewJobManager(
	provider StatusProvider,
	archiveHandler commands.ArchiveDeliveriesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		telemetryJob:        NewTelemetryJob(provider, logger),
		deliveryArchivalJob: NewDeliveryArchivalJob(archiveHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryArchivalJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery archival job: %w", err)
	}

	if err := jm.telemetryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.deliveryArchivalJob.Stop()
		return fmt.Errorf("failed to start telemetry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.telemetryJob.Stop()
	jm.deliveryArchivalJob.Stop()
}
