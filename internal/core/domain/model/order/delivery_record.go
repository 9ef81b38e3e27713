package order

import (
	"errors"
	"time"

	"butler/internal/core/domain/model/kernel"
)

// ErrOrderNotFinished is returned when building a delivery record from an
// order that has not reached a terminal status.
var ErrOrderNotFinished = errors.New("order has not reached a terminal status")

// DeliveryRecord is an immutable snapshot of a finished order, kept for the
// delivery history. Records are journaled in memory by the mission loop and
// archived to storage asynchronously.
type DeliveryRecord struct {
	// OrderID is the identifier of the finished order.
	OrderID kernel.UUID

	// TableID is the destination table the order was placed for.
	TableID string

	// Status is the terminal status, Delivered or Cancelled.
	Status Status

	// CreatedAt is when the operator placed the order.
	CreatedAt time.Time

	// FinishedAt is when the order reached its terminal status.
	FinishedAt time.Time
}

// NewDeliveryRecord snapshots a finished order. The order must be in a
// terminal status; zero finishedAt is replaced by time.Now.
func NewDeliveryRecord(o *Order, finishedAt time.Time) (DeliveryRecord, error) {
	if err := o.Validate(); err != nil {
		return DeliveryRecord{}, err
	}
	if !o.Status().IsTerminal() {
		return DeliveryRecord{}, ErrOrderNotFinished
	}
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	return DeliveryRecord{
		OrderID:    o.ID(),
		TableID:    o.TableID(),
		Status:     o.Status(),
		CreatedAt:  o.CreatedAt(),
		FinishedAt: finishedAt,
	}, nil
}
