package missionctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/mission"
	"butler/internal/core/domain/model/order"
	"butler/internal/core/domain/model/waypoint"
	"butler/internal/core/domain/services"
	"butler/internal/core/ports"
)

const (
	// DefaultRetryBudget is the number of navigation attempts per leg before
	// the mission is aborted toward home.
	DefaultRetryBudget = 3

	// DefaultKitchenDwell is how long the robot waits at the kitchen for
	// the orders to be loaded before departing for the first table.
	DefaultKitchenDwell = 2 * time.Second
)

// ErrNavigationFailed is surfaced as a fatal mission error once the retry
// budget for a navigation leg is exhausted.
var ErrNavigationFailed = errors.New("navigation failed after exhausting retries")

// Config tunes the mission control loop.
type Config struct {
	// RetryBudget is the number of navigation attempts per leg.
	// Zero means DefaultRetryBudget.
	RetryBudget int

	// KitchenDwell is the pause at the kitchen before the first delivery.
	// Zero means DefaultKitchenDwell; negative disables the dwell.
	KitchenDwell time.Duration
}

// Snapshot is a read-only view of the mission for monitors and UIs.
type Snapshot struct {
	MissionID string
	State     mission.State
	Goal      string
	X         float64
	Y         float64
	Queue     services.QueueSnapshot
	LastAlert string
}

// cycleResult tells the outer loop what to do after a delivery cycle leg.
type cycleResult int

const (
	cycleDone cycleResult = iota
	cycleResume
	cycleStopped
)

// Control runs the butler robot's mission loop. A single goroutine owns the
// Mission aggregate and drives it through the delivery cycle: kitchen pickup,
// table deliveries in queue order, return home. Operator commands arrive
// asynchronously through Notify/RequestCancel and are observed between and
// during navigation legs.
//
// Concurrency model:
//   - the loop goroutine is the only writer of the Mission aggregate
//   - HTTP handlers mutate the OrderQueue directly (it has its own lock)
//     and wake the loop through Notify
//   - cancellation is a latched signal: RequestCancel flags the mission and
//     nudges the loop, which preempts the in-flight navigation goal
type Control struct {
	nav      ports.NavigationClient
	registry *waypoint.Registry
	queue    *services.OrderQueue
	planner  services.RecoveryPlanner
	journal  *Journal
	logger   *slog.Logger

	retryBudget  int
	kitchenDwell time.Duration

	mu        sync.Mutex
	mission   *mission.Mission
	lastAlert string

	wake     chan struct{}
	cancelCh chan struct{}

	stop context.CancelFunc
	done chan struct{}
}

// NewControl wires a mission control loop. The loop does not run until
// Start is called.
func NewControl(
	nav ports.NavigationClient,
	registry *waypoint.Registry,
	queue *services.OrderQueue,
	journal *Journal,
	logger *slog.Logger,
	cfg Config,
) (*Control, error) {
	if nav == nil {
		return nil, errors.New("navigation client is required")
	}
	if registry == nil {
		return nil, errors.New("waypoint registry is required")
	}
	if queue == nil {
		return nil, errors.New("order queue is required")
	}
	if journal == nil {
		return nil, errors.New("journal is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	m, err := mission.NewMission(kernel.NewUUID())
	if err != nil {
		return nil, err
	}

	if cfg.RetryBudget <= 0 {
		cfg.RetryBudget = DefaultRetryBudget
	}
	if cfg.KitchenDwell == 0 {
		cfg.KitchenDwell = DefaultKitchenDwell
	}

	return &Control{
		nav:          nav,
		registry:     registry,
		queue:        queue,
		planner:      services.NewRecoveryPlanner(),
		journal:      journal,
		logger:       logger.With("component", "missionctl"),
		retryBudget:  cfg.RetryBudget,
		kitchenDwell: cfg.KitchenDwell,
		mission:      m,
		wake:         make(chan struct{}, 1),
		cancelCh:     make(chan struct{}, 1),
	}, nil
}

// Start launches the mission loop goroutine. The loop runs until Stop is
// called or the context is cancelled.
func (c *Control) Start(ctx context.Context) {
	ctx, c.stop = context.WithCancel(ctx)
	c.done = make(chan struct{})
	go c.run(ctx)
}

// Stop shuts the mission loop down and waits for it to finish. Outstanding
// orders are cancelled and journaled.
func (c *Control) Stop() {
	if c.stop == nil {
		return
	}
	c.stop()
	<-c.done
}

// Notify wakes the loop after a queue edit. Non-blocking.
func (c *Control) Notify() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// RequestCancel flags the active mission for cancellation and preempts the
// navigation goal in flight. Returns mission.ErrCancelWhileIdle when the
// robot has no active mission.
func (c *Control) RequestCancel() error {
	c.mu.Lock()
	err := c.mission.RequestCancel()
	c.mu.Unlock()
	if err != nil {
		return err
	}

	select {
	case c.cancelCh <- struct{}{}:
	default:
	}
	c.logger.Info("mission cancellation requested")
	return nil
}

// Status returns a point-in-time view of the mission, queue and robot pose.
func (c *Control) Status() Snapshot {
	x, y := c.nav.Pose()

	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		MissionID: c.mission.ID().String(),
		State:     c.mission.State(),
		Goal:      c.mission.Goal(),
		X:         x,
		Y:         y,
		Queue:     c.queue.Snapshot(),
		LastAlert: c.lastAlert,
	}
}

// run is the mission loop. It sleeps until a queue edit arrives, then works
// the delivery cycle to completion before sleeping again.
func (c *Control) run(ctx context.Context) {
	defer close(c.done)
	c.logger.Info("mission loop started")

	for {
		select {
		case <-ctx.Done():
			c.shutdown()
			return
		case <-c.wake:
		}

		if !c.queue.HasPending() {
			continue
		}

		for {
			result := c.deliveryCycle(ctx)
			if result == cycleStopped {
				c.shutdown()
				return
			}
			if result == cycleDone {
				break
			}
		}
	}
}

// deliveryCycle drives one pass of the cycle: to the kitchen, through the
// queued tables, back home. Returns cycleResume when a recovery ended at the
// kitchen with orders still pending.
func (c *Control) deliveryCycle(ctx context.Context) (result cycleResult) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("mission loop panic", "panic", r)
			c.resetAfterPanic(fmt.Sprintf("mission aborted by internal error: %v", r))
			result = cycleDone
		}
	}()

	// A cancel latched between a recovery leg and the resumed cycle must not
	// be thrown away with its stale signal token.
	if c.cancelFlagged() {
		return c.recover(ctx, mission.ToKitchen, false)
	}
	c.drainCancelSignal()

	// Kitchen pickup. Orders may still be added or removed on this leg.
	if err := c.depart(mission.ToKitchen, waypoint.KitchenName); err != nil {
		c.logger.Error("cannot start mission", "error", err)
		return cycleDone
	}

	// The kitchen leg watches queue edits: removing the last pending order
	// makes the pickup pointless, so the leg is aborted.
	switch c.travel(ctx, waypoint.KitchenName, c.wake) {
	case goalStopped:
		return cycleStopped
	case goalCancelled:
		return c.recover(ctx, mission.ToKitchen, false)
	case goalExhausted:
		c.alert(fmt.Sprintf("%s: could not reach kitchen", ErrNavigationFailed))
		return c.recover(ctx, mission.ToKitchen, true)
	}

	switch c.dwell(ctx) {
	case dwellStopped:
		return cycleStopped
	case dwellCancelled:
		return c.recover(ctx, mission.ToKitchen, false)
	}

	// Table deliveries. The queue is locked once the first leg departs.
	for {
		if c.cancelFlagged() {
			return c.recover(ctx, c.state(), false)
		}

		next, err := c.queue.DequeueNext()
		if errors.Is(err, services.ErrQueueEmpty) {
			break
		}
		if err != nil {
			c.logger.Error("dequeue failed", "error", err)
			break
		}

		if err := c.depart(mission.ToTable, next.TableID()); err != nil {
			c.logger.Error("cannot depart for table", "table", next.TableID(), "error", err)
			c.releaseAndJournal()
			return c.recover(ctx, mission.ToTable, true)
		}

		switch c.travel(ctx, next.TableID(), nil) {
		case goalStopped:
			return cycleStopped
		case goalCancelled:
			c.releaseAndJournal()
			return c.recover(ctx, mission.ToTable, false)
		case goalExhausted:
			c.alert(fmt.Sprintf("%s: could not reach %s", ErrNavigationFailed, next.TableID()))
			c.releaseAndJournal()
			return c.recover(ctx, mission.ToTable, true)
		}

		done, err := c.queue.CompleteCurrent()
		if err != nil {
			c.logger.Error("complete delivery failed", "error", err)
			continue
		}
		c.journalOrder(done)
		c.logger.Info("order delivered", "table", done.TableID(), "orderId", done.ID().String())
	}

	// Return home.
	if err := c.depart(mission.ToHome, waypoint.HomeName); err != nil {
		c.logger.Error("cannot depart for home", "error", err)
		return cycleDone
	}

	switch c.travel(ctx, waypoint.HomeName, nil) {
	case goalStopped:
		return cycleStopped
	case goalCancelled:
		return c.recover(ctx, mission.ToHome, false)
	case goalExhausted:
		c.alert(fmt.Sprintf("%s: could not reach home", ErrNavigationFailed))
		return c.recover(ctx, mission.ToHome, true)
	}

	c.complete()
	return cycleDone
}

// recover drives the robot to the recovery waypoint after a cancellation or
// fatal failure. forceHome overrides the planner when the leg failed rather
// than being cancelled.
func (c *Control) recover(ctx context.Context, interrupted mission.State, forceHome bool) cycleResult {
	dest := waypoint.HomeName
	if !forceHome {
		dest = c.planner.PlanRecovery(interrupted, c.queue.HasPending())
	}

	for {
		c.clearCancelFlag()
		c.drainCancelSignal()

		if err := c.depart(mission.CancelRecovery, dest); err != nil {
			c.logger.Error("cannot start recovery", "error", err)
			c.forceIdle()
			return cycleDone
		}
		c.logger.Info("recovering", "destination", dest)

		switch c.travel(ctx, dest, nil) {
		case goalStopped:
			return cycleStopped
		case goalCancelled:
			// Cancelled mid-recovery: abandon and head straight home.
			dest = waypoint.HomeName
			continue
		case goalExhausted:
			c.alert(fmt.Sprintf("%s: recovery to %s failed, mission abandoned", ErrNavigationFailed, dest))
			c.forceIdle()
			return cycleDone
		}

		if c.queue.HasPending() {
			c.logger.Info("recovery complete, resuming pending orders", "count", c.queue.Len())
			return cycleResume
		}

		c.complete()
		return cycleDone
	}
}

// travelOutcome classifies how a navigation leg ended from the loop's point
// of view.
type travelOutcome int

const (
	goalReached travelOutcome = iota
	goalCancelled
	goalExhausted
	goalStopped
)

// travel navigates to the named waypoint, retrying failed attempts up to the
// retry budget. It reacts to cancellation requests and shutdown by preempting
// the in-flight goal. A non-nil wake channel additionally aborts the leg when
// a queue edit leaves nothing pending.
func (c *Control) travel(ctx context.Context, name string, wake <-chan struct{}) travelOutcome {
	wp, err := c.registry.Get(name)
	if err != nil {
		c.logger.Error("unknown waypoint", "waypoint", name, "error", err)
		return goalExhausted
	}

	for attempt := 1; attempt <= c.retryBudget; attempt++ {
		handle, err := c.nav.Goto(ctx, wp)
		if err != nil {
			c.logger.Warn("goal submission failed",
				"waypoint", name, "attempt", attempt, "error", err)
			continue
		}

		outcome, retry := c.awaitGoal(ctx, handle, wake)
		if retry {
			c.logger.Warn("navigation attempt failed",
				"waypoint", name, "attempt", attempt, "budget", c.retryBudget)
			continue
		}
		if outcome == goalReached {
			c.logger.Info("waypoint reached", "waypoint", name)
		}
		return outcome
	}

	return goalExhausted
}

// awaitGoal blocks until the goal resolves or the leg is interrupted. The
// second return value asks travel to retry the same goal.
func (c *Control) awaitGoal(ctx context.Context, handle ports.GoalHandle, wake <-chan struct{}) (travelOutcome, bool) {
	for {
		select {
		case <-ctx.Done():
			handle.Cancel()
			<-handle.Outcome()
			return goalStopped, false

		case <-c.cancelCh:
			handle.Cancel()
			<-handle.Outcome()
			return goalCancelled, false

		case <-wake:
			if c.queue.HasPending() {
				continue
			}
			handle.Cancel()
			<-handle.Outcome()
			return goalCancelled, false

		case outcome := <-handle.Outcome():
			switch outcome {
			case ports.GoalSucceeded:
				return goalReached, false
			case ports.GoalPreempted:
				return goalCancelled, false
			default:
				return goalExhausted, true
			}
		}
	}
}

// dwellResult classifies how the kitchen pause ended.
type dwellResult int

const (
	dwellDone dwellResult = iota
	dwellCancelled
	dwellStopped
)

// dwell pauses at the kitchen while the orders are loaded onto the robot.
// A cancellation request interrupts the pause.
func (c *Control) dwell(ctx context.Context) dwellResult {
	if c.kitchenDwell <= 0 {
		return dwellDone
	}

	timer := time.NewTimer(c.kitchenDwell)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return dwellStopped
	case <-c.cancelCh:
		return dwellCancelled
	case <-timer.C:
		return dwellDone
	}
}

// shutdown cancels any in-flight delivery and outstanding orders so nothing
// is silently lost, then journals them.
func (c *Control) shutdown() {
	c.releaseAndJournal()
	drained, err := c.queue.DrainPending()
	if err != nil {
		c.logger.Error("drain pending orders failed", "error", err)
	}
	for _, o := range drained {
		c.journalOrder(o)
	}
	c.logger.Info("mission loop stopped")
}

func (c *Control) depart(next mission.State, goal string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mission.DepartFor(next, goal); err != nil {
		return err
	}
	c.queue.SetAccepting(next.AcceptsOrders())
	c.logger.Info("departing", "state", next.String(), "goal", goal)
	return nil
}

func (c *Control) complete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mission.Complete(); err != nil {
		c.logger.Error("cannot complete mission", "error", err)
		return
	}
	c.queue.SetAccepting(true)
	c.logger.Info("mission complete, robot idle")
}

// forceIdle abandons the current mission after an unrecoverable failure.
func (c *Control) forceIdle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mission.Complete(); err != nil {
		// The state machine cannot reach Idle from here; start a fresh
		// mission aggregate instead of leaving the robot wedged.
		if m, newErr := mission.NewMission(kernel.NewUUID()); newErr == nil {
			c.mission = m
		}
	}
	c.queue.SetAccepting(true)
}

func (c *Control) resetAfterPanic(alert string) {
	c.releaseAndJournal()
	c.alert(alert)
	c.forceIdle()
}

func (c *Control) state() mission.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mission.State()
}

func (c *Control) cancelFlagged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mission.CancelRequested()
}

func (c *Control) clearCancelFlag() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mission.ClearCancel()
}

func (c *Control) drainCancelSignal() {
	select {
	case <-c.cancelCh:
	default:
	}
}

func (c *Control) alert(msg string) {
	c.mu.Lock()
	c.lastAlert = msg
	c.mu.Unlock()
	c.logger.Error("mission alert", "alert", msg)
}

// releaseAndJournal cancels the in-flight order, if any, and records it.
func (c *Control) releaseAndJournal() {
	released, err := c.queue.ReleaseCurrent()
	if err != nil {
		c.logger.Error("release current order failed", "error", err)
		return
	}
	if released != nil {
		c.journalOrder(released)
		c.logger.Info("order cancelled mid-delivery",
			"table", released.TableID(), "orderId", released.ID().String())
	}
}

func (c *Control) journalOrder(o *order.Order) {
	rec, err := order.NewDeliveryRecord(o, time.Now())
	if err != nil {
		c.logger.Error("cannot journal order", "error", err)
		return
	}
	c.journal.Record(rec)
}
