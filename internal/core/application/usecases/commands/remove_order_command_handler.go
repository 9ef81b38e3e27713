package commands

import (
	"context"
)

// RemoveOrderCommandHandler withdraws a pending delivery and wakes the
// mission loop so it can re-evaluate the route.
type RemoveOrderCommandHandler struct {
	queue    Queue
	notifier MissionNotifier
}

// NewRemoveOrderCommandHandler creates a handler for withdrawing deliveries.
func NewRemoveOrderCommandHandler(queue Queue, notifier MissionNotifier) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		queue:    queue,
		notifier: notifier,
	}
}

// Handle processes the remove order command.
// The queue distinguishes pending orders (removed and cancelled) from the
// one in flight (rejected) and unknown tables (not found).
func (h *RemoveOrderCommandHandler) Handle(_ context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.queue.Remove(cmd.TableID()); err != nil {
		return err
	}

	h.notifier.Notify()
	return nil
}
