package order

import (
	"errors"
	"time"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTableIDIsRequired is returned when attempting to create an order
	// without a destination table.
	ErrTableIDIsRequired = errs.NewValueIsRequiredError("tableId")
)

// Order represents one pending delivery to a cafe table. It is the aggregate
// root that manages the order lifecycle from queueing through delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must name a destination table
//   - Status transitions follow the delivery workflow (see Status)
//   - Can only be created through the NewOrder constructor
//
// Orders are created while the robot is accepting modifications (idle or en
// route to the kitchen), mutated only by the mission loop (status
// transitions) and the queue manager (removal), and reach a terminal status
// of Delivered or Cancelled.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableID names the destination table waypoint
	tableID string

	// createdAt is the time the operator placed the order
	createdAt time.Time

	// status represents the current state in the delivery lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new pending Order for the given table.
// This is the only way to create a valid Order.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - tableID: destination table waypoint name (must be non-empty)
//   - createdAt: order creation time (zero time is replaced by time.Now)
//
// The order starts in Pending status.
func NewOrder(id kernel.UUID, tableID string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	o.createdAt = createdAt

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Unlike NewOrder, it accepts any valid status, allowing archived orders
// to be loaded back with their terminal state intact.
func RestoreOrder(id kernel.UUID, tableID string, createdAt time.Time, status Status) (*Order, error) {
	o := &Order{
		isConstructed: true,
		createdAt:     createdAt,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableID(tableID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the destination table waypoint name.
func (o *Order) TableID() string {
	return o.tableID
}

// CreatedAt returns the time the operator placed the order.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Start marks the order as in progress. Called by the mission loop when the
// robot departs the kitchen for this order's table.
// Returns an error if the order is not Pending.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver marks the order as delivered. Called by the mission loop when the
// robot arrives at the order's table.
// Returns an error if the order is not InProgress.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as cancelled, either because the operator removed
// it or because its delivery was interrupted.
// Returns an error if the order is already in a terminal status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
