package deliverylogrepo

import (
	"context"

	"butler/internal/core/domain/model/order"
	"butler/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryLogRepository implements DeliveryLogRepository using GORM.
type GormDeliveryLogRepository struct {
	db *gorm.DB
}

// NewGormDeliveryLogRepository creates a new GORM delivery log repository.
func NewGormDeliveryLogRepository(db *gorm.DB) *GormDeliveryLogRepository {
	return &GormDeliveryLogRepository{db: db}
}

// Add persists a batch of finished delivery records.
// Every record must carry a terminal order status.
func (r *GormDeliveryLogRepository) Add(ctx context.Context, records []order.DeliveryRecord) error {
	if len(records) == 0 {
		return nil
	}

	dtos := make([]DeliveryDTO, 0, len(records))
	for _, rec := range records {
		if err := rec.OrderID.Validate(); err != nil {
			return err
		}
		if !rec.Status.IsTerminal() {
			return errs.NewValueIsInvalidError("status")
		}
		dtos = append(dtos, fromDomain(rec))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetRecent retrieves up to limit records ordered by finish time, newest first.
func (r *GormDeliveryLogRepository) GetRecent(ctx context.Context, limit int) ([]order.DeliveryRecord, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Order("finished_at DESC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]order.DeliveryRecord, 0, len(dtos))
	for _, dto := range dtos {
		rec, recErr := toDomain(dto)
		if recErr != nil {
			return nil, recErr
		}
		records = append(records, rec)
	}

	return records, nil
}
