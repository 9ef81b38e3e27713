package commands

import (
	"errors"

	"butler/internal/pkg/guard"
)

var ErrCancelMissionCommandIsNotConstructed = errors.New(
	"CancelMissionCommand must be created via NewCancelMissionCommand constructor",
)

// CancelMissionCommand represents an operator request to cancel the delivery
// leg currently in flight. The robot retreats to a recovery waypoint and
// resumes any orders still pending.
type CancelMissionCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelMissionCommand creates a command to cancel the active mission.
// This is a parameterless command; the mission loop decides the recovery route.
func NewCancelMissionCommand() CancelMissionCommand {
	return CancelMissionCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelMissionCommandIsNotConstructed if validation fails.
func (c CancelMissionCommand) Validate() error {
	return c.guard.Validate(ErrCancelMissionCommandIsNotConstructed)
}
