package services

import (
	"errors"
	"sync"

	"butler/internal/core/domain/model/order"
)

var (
	// ErrQueueLocked is returned when the queue does not accept modifications
	// because the robot has already left the kitchen.
	ErrQueueLocked = errors.New("order queue is locked while deliveries are in progress")

	// ErrDuplicateOrder is returned when an order for the same table is
	// already queued or being delivered.
	ErrDuplicateOrder = errors.New("an order for this table is already queued")

	// ErrOrderNotFound is returned when no queued order matches the table.
	ErrOrderNotFound = errors.New("no queued order for this table")

	// ErrOrderAlreadyInProgress is returned when the order to remove is the
	// one currently being delivered.
	ErrOrderAlreadyInProgress = errors.New("order is already being delivered")

	// ErrQueueEmpty is returned when dequeuing from an empty queue.
	ErrQueueEmpty = errors.New("order queue is empty")

	// ErrDeliveryInProgress is returned when dequeuing while a previous
	// delivery has not been completed or released.
	ErrDeliveryInProgress = errors.New("a delivery is already in progress")
)

// OrderQueue is a domain service managing the FIFO of pending deliveries and
// the single order currently in flight.
//
// Key responsibilities:
//   - Accepting new orders only while the robot is idle or heading to
//     the kitchen (the accepting window, toggled by the mission loop)
//   - Rejecting duplicate orders for the same table
//   - Promoting the next pending order to in-progress, one at a time
//   - Distinguishing removable pending orders from the one in flight
//
// Business rules:
//   - At most one order per table may be queued or in flight
//   - Orders are delivered in the order they were placed
//   - A pending order can be removed by its table; the in-flight order
//     can only be cancelled through mission cancellation
//
// OrderQueue is safe for concurrent use: operator commands arrive from HTTP
// handler goroutines while the mission loop drives dequeue and completion.
type OrderQueue struct {
	mu        sync.Mutex
	pending   []*order.Order
	current   *order.Order
	accepting bool
}

// QueueSnapshot is a point-in-time view of the queue for status reporting.
type QueueSnapshot struct {
	// PendingTables lists destination tables awaiting delivery, in order.
	PendingTables []string

	// CurrentTable is the table being served right now, empty if none.
	CurrentTable string

	// Accepting reports whether new orders are currently admitted.
	Accepting bool
}

// NewOrderQueue creates an empty OrderQueue that accepts new orders.
func NewOrderQueue() *OrderQueue {
	return &OrderQueue{accepting: true}
}

// SetAccepting opens or closes the queue for modifications. The mission loop
// closes the queue when the robot leaves the kitchen and reopens it once the
// mission completes.
func (q *OrderQueue) SetAccepting(accepting bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.accepting = accepting
}

// Add appends a pending order to the queue.
//
// Returns:
//   - ErrQueueLocked if the robot has already left the kitchen
//   - ErrDuplicateOrder if the table already has a queued or in-flight order
func (q *OrderQueue) Add(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.accepting {
		return ErrQueueLocked
	}
	if q.hasTableLocked(o.TableID()) {
		return ErrDuplicateOrder
	}

	q.pending = append(q.pending, o)
	return nil
}

// Remove cancels and removes the pending order for the given table.
//
// Returns:
//   - ErrOrderAlreadyInProgress if that table's order is in flight
//   - ErrOrderNotFound if no pending order matches the table
func (q *OrderQueue) Remove(tableID string) (*order.Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current != nil && q.current.TableID() == tableID {
		return nil, ErrOrderAlreadyInProgress
	}

	for i, o := range q.pending {
		if o.TableID() != tableID {
			continue
		}
		if err := o.Cancel(); err != nil {
			return nil, err
		}
		q.pending = append(q.pending[:i], q.pending[i+1:]...)
		return o, nil
	}

	return nil, ErrOrderNotFound
}

// DequeueNext promotes the oldest pending order to in-progress and returns it.
//
// Returns:
//   - ErrDeliveryInProgress if a previous delivery was not completed
//   - ErrQueueEmpty if no orders are pending
func (q *OrderQueue) DequeueNext() (*order.Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current != nil {
		return nil, ErrDeliveryInProgress
	}
	if len(q.pending) == 0 {
		return nil, ErrQueueEmpty
	}

	next := q.pending[0]
	if err := next.Start(); err != nil {
		return nil, err
	}

	q.pending = q.pending[1:]
	q.current = next
	return next, nil
}

// CompleteCurrent marks the in-flight order as delivered and clears the slot.
func (q *OrderQueue) CompleteCurrent() (*order.Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current == nil {
		return nil, ErrQueueEmpty
	}
	if err := q.current.Deliver(); err != nil {
		return nil, err
	}

	done := q.current
	q.current = nil
	return done, nil
}

// ReleaseCurrent cancels the in-flight order and clears the slot. Called when
// the delivery leg was cancelled or failed fatally.
// Returns nil, nil when no delivery is in flight.
func (q *OrderQueue) ReleaseCurrent() (*order.Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current == nil {
		return nil, nil
	}
	if err := q.current.Cancel(); err != nil {
		return nil, err
	}

	released := q.current
	q.current = nil
	return released, nil
}

// DrainPending cancels and removes every pending order, returning the ones
// cancelled so far. An order that cannot be cancelled stays queued along with
// the rest of the tail. Called when recovery abandons the remaining route.
func (q *OrderQueue) DrainPending() ([]*order.Order, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	drained := make([]*order.Order, 0, len(q.pending))
	for i, o := range q.pending {
		if err := o.Cancel(); err != nil {
			q.pending = q.pending[i:]
			return drained, err
		}
		drained = append(drained, o)
	}

	q.pending = nil
	return drained, nil
}

// Current returns the order being delivered right now, nil if none.
func (q *OrderQueue) Current() *order.Order {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// HasPending reports whether any orders await delivery.
func (q *OrderQueue) HasPending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) > 0
}

// Len returns the number of pending orders, excluding the one in flight.
func (q *OrderQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Snapshot returns a point-in-time view of the queue.
func (q *OrderQueue) Snapshot() QueueSnapshot {
	q.mu.Lock()
	defer q.mu.Unlock()

	snapshot := QueueSnapshot{
		PendingTables: make([]string, 0, len(q.pending)),
		Accepting:     q.accepting,
	}
	for _, o := range q.pending {
		snapshot.PendingTables = append(snapshot.PendingTables, o.TableID())
	}
	if q.current != nil {
		snapshot.CurrentTable = q.current.TableID()
	}

	return snapshot
}

func (q *OrderQueue) hasTableLocked(tableID string) bool {
	if q.current != nil && q.current.TableID() == tableID {
		return true
	}
	for _, o := range q.pending {
		if o.TableID() == tableID {
			return true
		}
	}
	return false
}
