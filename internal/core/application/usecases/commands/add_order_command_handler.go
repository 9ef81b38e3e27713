package commands

import (
	"context"
	"time"

	"butler/internal/core/domain/model/order"
	"butler/internal/core/domain/model/waypoint"
)

// AddOrderCommandHandler queues a new delivery and wakes the mission loop.
// The first order added to an idle robot starts a delivery cycle.
//
// Example:
//
//	handler := NewAddOrderCommandHandler(registry, queue, control)
//	cmd, _ := NewAddOrderCommand(kernel.NewUUID(), "table1")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order rejected: %w", err)
//	}
type AddOrderCommandHandler struct {
	registry *waypoint.Registry
	queue    Queue
	notifier MissionNotifier
}

// NewAddOrderCommandHandler creates a handler for queueing deliveries.
// Requires the waypoint registry to resolve table names, the order queue
// and the mission loop notifier.
func NewAddOrderCommandHandler(
	registry *waypoint.Registry,
	queue Queue,
	notifier MissionNotifier,
) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		registry: registry,
		queue:    queue,
		notifier: notifier,
	}
}

// Handle processes the add order command.
// Resolves the table against the waypoint registry, appends a pending order
// to the queue and wakes the mission loop.
func (h *AddOrderCommandHandler) Handle(_ context.Context, cmd AddOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	wp, err := h.registry.Table(cmd.TableID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), wp.Name(), time.Now())
	if err != nil {
		return err
	}

	if err = h.queue.Add(o); err != nil {
		return err
	}

	h.notifier.Notify()
	return nil
}
