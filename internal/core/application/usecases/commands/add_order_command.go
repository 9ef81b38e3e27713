package commands

import (
	"errors"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/pkg/guard"
)

var (
	ErrAddOrderCommandIsNotConstructed = errors.New(
		"AddOrderCommand must be created via NewAddOrderCommand constructor",
	)
	ErrTableIDIsRequired = errors.New("tableId is required")
)

// AddOrderCommand represents an operator request to queue a delivery for a
// table. The order is only accepted while the robot is idle or on its way to
// the kitchen.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewAddOrderCommand(orderID, "table2")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewAddOrderCommandHandler(registry, queue, control)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to queue order: %w", err)
//	}
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tableID string

	guard guard.ConstructorGuard
}

// NewAddOrderCommand creates a command to queue a new delivery.
// Validates that the order ID is valid and the table id is not empty.
// Returns an error if any validation fails.
func NewAddOrderCommand(orderID kernel.UUID, tableID string) (AddOrderCommand, error) {
	cmd := AddOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableID(tableID),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddOrderCommandIsNotConstructed if validation fails.
func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c AddOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableID returns the destination table waypoint name.
func (c AddOrderCommand) TableID() string {
	return c.tableID
}

func (c *AddOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}
