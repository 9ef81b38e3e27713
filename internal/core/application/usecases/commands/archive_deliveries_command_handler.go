package commands

import (
	"context"

	"butler/internal/core/domain/model/order"
)

// ArchiveDeliveriesCommandHandler drains finished deliveries from the
// in-memory journal and persists them. A batch that fails to persist is put
// back so it is retried on the next run.
//
// Example:
//
//	handler := NewArchiveDeliveriesCommandHandler(journal, uowFactory)
//	cmd, _ := NewArchiveDeliveriesCommand(100)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("archival failed, records kept for retry: %v", err)
//	}
type ArchiveDeliveriesCommandHandler struct {
	journal    Journal
	uowFactory DeliveryUoWFactory
}

// NewArchiveDeliveriesCommandHandler creates a handler for delivery archival.
// Requires the mission journal and a DeliveryUoWFactory for transactional
// persistence.
func NewArchiveDeliveriesCommandHandler(
	journal Journal,
	uowFactory DeliveryUoWFactory,
) ArchiveDeliveriesCommandHandler {
	return ArchiveDeliveriesCommandHandler{
		journal:    journal,
		uowFactory: uowFactory,
	}
}

// Handle processes the archival command.
// Drains up to BatchSize records, persists them in one transaction and
// requeues the batch if persistence fails.
func (h *ArchiveDeliveriesCommandHandler) Handle(ctx context.Context, cmd ArchiveDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	batch := h.journal.DrainBatch(cmd.BatchSize())
	if len(batch) == 0 {
		return nil
	}

	if err := h.archive(ctx, batch); err != nil {
		h.journal.Requeue(batch)
		return err
	}

	return nil
}

func (h *ArchiveDeliveriesCommandHandler) archive(ctx context.Context, batch []order.DeliveryRecord) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryLogRepository().Add(ctx, batch); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
