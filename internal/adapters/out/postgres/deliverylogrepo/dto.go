// Package deliverylogrepo provides data transfer objects and mapping
// functions for the delivery history. This package implements the repository
// pattern for archived delivery records, handling the conversion between
// domain snapshots and database rows.
package deliverylogrepo

import (
	"time"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting finished
// delivery records. Rows are append-only; records never change once archived.
type DeliveryDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID    string    `gorm:"index"`
	Status     int
	CreatedAt  time.Time
	FinishedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for delivery records.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery record to its database representation.
func fromDomain(rec order.DeliveryRecord) DeliveryDTO {
	return DeliveryDTO{
		OrderID:    rec.OrderID.Bytes(),
		TableID:    rec.TableID,
		Status:     int(rec.Status),
		CreatedAt:  rec.CreatedAt,
		FinishedAt: rec.FinishedAt,
	}
}

// toDomain converts a database row back to a delivery record.
func toDomain(dto DeliveryDTO) (order.DeliveryRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.DeliveryRecord{}, err
	}

	status := order.Status(dto.Status)
	if err := status.Validate(); err != nil {
		return order.DeliveryRecord{}, err
	}

	return order.DeliveryRecord{
		OrderID:    id,
		TableID:    dto.TableID,
		Status:     status,
		CreatedAt:  dto.CreatedAt,
		FinishedAt: dto.FinishedAt,
	}, nil
}
