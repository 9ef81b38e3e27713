package commands

import (
	"errors"

	"butler/internal/pkg/guard"
)

var (
	ErrArchiveDeliveriesCommandIsNotConstructed = errors.New(
		"ArchiveDeliveriesCommand must be created via NewArchiveDeliveriesCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batchSize must be greater than 0")
)

// ArchiveDeliveriesCommand represents a request to move finished delivery
// records from the in-memory journal into persistent storage. Issued
// periodically by the archival job.
type ArchiveDeliveriesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewArchiveDeliveriesCommand creates a command to archive up to batchSize
// journal records. Returns an error if batchSize is not positive.
func NewArchiveDeliveriesCommand(batchSize int) (ArchiveDeliveriesCommand, error) {
	cmd := ArchiveDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchSize(batchSize); err != nil {
		return ArchiveDeliveriesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrArchiveDeliveriesCommandIsNotConstructed if validation fails.
func (c ArchiveDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrArchiveDeliveriesCommandIsNotConstructed)
}

// BatchSize returns the maximum number of records to archive per run.
func (c ArchiveDeliveriesCommand) BatchSize() int {
	return c.batchSize
}

func (c *ArchiveDeliveriesCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return ErrBatchSizeIsInvalid
	}

	c.batchSize = batchSize
	return nil
}
