package ports

import (
	"context"

	"butler/internal/core/domain/model/order"
)

// DeliveryLogRepository defines the persistence contract for completed
// delivery records. Records are appended by the archival job once an order
// reaches a terminal status.
type DeliveryLogRepository interface {
	// Add persists a batch of finished delivery records.
	Add(ctx context.Context, records []order.DeliveryRecord) error

	// GetRecent retrieves up to limit records ordered by finish time,
	// newest first.
	GetRecent(ctx context.Context, limit int) ([]order.DeliveryRecord, error)
}
