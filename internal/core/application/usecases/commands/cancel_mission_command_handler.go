package commands

import (
	"context"
)

// CancelMissionCommandHandler forwards a cancellation request to the mission
// loop, which preempts the navigation goal in flight and retreats to a
// recovery waypoint.
type CancelMissionCommandHandler struct {
	canceller MissionCanceller
}

// NewCancelMissionCommandHandler creates a handler for mission cancellation.
func NewCancelMissionCommandHandler(canceller MissionCanceller) CancelMissionCommandHandler {
	return CancelMissionCommandHandler{canceller: canceller}
}

// Handle processes the cancel mission command.
// Fails with mission.ErrCancelWhileIdle when there is no active mission.
func (h *CancelMissionCommandHandler) Handle(_ context.Context, cmd CancelMissionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.canceller.RequestCancel()
}
