package queries

import (
	"context"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryHistoryQueryHandler retrieves archived delivery records from
// the database, bypassing the domain model for read performance.
type GetDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryHistoryQueryHandler creates a handler for delivery history
// queries. Requires a GORM database connection for query execution.
func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve archived deliveries, newest first.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryHistoryQuery,
) ([]GetDeliveryHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetDeliveryHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			table_id,
			status,
			created_at,
			finished_at
		FROM deliveries
		ORDER BY finished_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDeliveryHistoryQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.TableID,
			&status,
			&resp.CreatedAt,
			&resp.FinishedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderID
		resp.Status = order.Status(status).String()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
