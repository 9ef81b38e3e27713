package jobs

import (
	"context"
	"log/slog"

	"butler/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// archivalBatchSize caps how many journal records one archival run persists.
const archivalBatchSize = 100

// DeliveryArchivalJob periodically drains finished deliveries from the
// mission journal into the database. Runs every five seconds; a failed batch
// stays in the journal and is retried on the next run.
type DeliveryArchivalJob struct {
	handler commands.ArchiveDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryArchivalJob creates a new job for archiving delivery records.
func NewDeliveryArchivalJob(
	handler commands.ArchiveDeliveriesCommandHandler,
	logger *slog.Logger,
) *DeliveryArchivalJob {
	return &DeliveryArchivalJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_archival_job"),
	}
}

// Start begins the delivery archival job to run every five seconds.
func (j *DeliveryArchivalJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewArchiveDeliveriesCommand(archivalBatchSize)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery archival command invalid", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Delivery archival job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery archival job started (running every 5 seconds)")
	return nil
}

// Stop stops the delivery archival job.
func (j *DeliveryArchivalJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery archival job stopped")
}
