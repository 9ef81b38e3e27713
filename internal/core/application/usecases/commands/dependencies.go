// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, delegation to the
// mission loop or queue, and transactional persistence where storage is involved.
package commands

import (
	"context"

	"butler/internal/core/domain/model/order"
	"butler/internal/core/ports"
)

type (
	// Queue accepts operator edits of the pending deliveries.
	// Implemented by the domain OrderQueue.
	Queue interface {
		Add(o *order.Order) error
		Remove(tableID string) (*order.Order, error)
	}

	// MissionNotifier wakes the mission loop after a queue edit.
	MissionNotifier interface {
		Notify()
	}

	// MissionCanceller cancels the delivery leg currently in flight.
	MissionCanceller interface {
		RequestCancel() error
	}

	// Journal drains finished delivery records for archival and takes
	// failed batches back.
	Journal interface {
		DrainBatch(max int) []order.DeliveryRecord
		Requeue(batch []order.DeliveryRecord)
	}

	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryLogRepoFactory provides access to the delivery log repository
	// within a transaction.
	DeliveryLogRepoFactory interface {
		DeliveryLogRepository() ports.DeliveryLogRepository
	}

	// DeliveryUoW manages transactions for delivery log operations.
	DeliveryUoW interface {
		TxManager
		DeliveryLogRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
