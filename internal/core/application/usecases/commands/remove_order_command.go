package commands

import (
	"errors"

	"butler/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents an operator request to withdraw the pending
// delivery for a table. An order already being delivered cannot be removed.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	tableID string

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to withdraw a pending delivery.
// Returns an error if the table id is empty.
func NewRemoveOrderCommand(tableID string) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTableID(tableID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrderCommandIsNotConstructed if validation fails.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// TableID returns the table whose pending order should be withdrawn.
func (c RemoveOrderCommand) TableID() string {
	return c.tableID
}

func (c *RemoveOrderCommand) setTableID(tableID string) error {
	if tableID == "" {
		return ErrTableIDIsRequired
	}

	c.tableID = tableID
	return nil
}
