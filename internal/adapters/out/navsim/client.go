package navsim

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/waypoint"
	"butler/internal/core/ports"
)

const (
	// DefaultSpeed is the simulated travel speed in map units per second.
	DefaultSpeed = 20.0

	// minLegDuration keeps zero-distance goals observable as real legs.
	minLegDuration = 10 * time.Millisecond
)

// ErrSpeedIsInvalid is returned when the client is configured with a
// non-positive speed.
var ErrSpeedIsInvalid = errors.New("speed must be greater than 0")

// Client is a simulated navigation stack. Travel time is proportional to the
// straight-line distance between the robot's pose and the goal; the pose is
// interpolated along the leg while travelling. An optional failure rate
// makes a fraction of goals abort partway, for exercising retry and
// recovery behavior.
//
// Client implements ports.NavigationClient and is safe for concurrent use,
// though the mission loop issues goals one at a time.
type Client struct {
	speed       float64
	failureRate float64
	logger      *slog.Logger

	mu      sync.Mutex
	pose    kernel.Pose
	leg     *activeLeg
	randGen func() float64
}

// activeLeg tracks the goal currently being simulated, for pose
// interpolation.
type activeLeg struct {
	from     kernel.Pose
	to       kernel.Pose
	started  time.Time
	duration time.Duration
}

// Config tunes the simulator.
type Config struct {
	// Speed is the travel speed in map units per second.
	// Zero means DefaultSpeed.
	Speed float64

	// FailureRate is the probability in [0, 1) that a goal aborts partway.
	FailureRate float64

	// Start is the robot's initial pose. The zero value places the robot
	// at the registry's home waypoint.
	Start kernel.Pose
}

// NewClient creates a simulator starting at the home waypoint of the given
// registry unless cfg.Start overrides it.
func NewClient(registry *waypoint.Registry, logger *slog.Logger, cfg Config) (*Client, error) {
	if cfg.Speed == 0 {
		cfg.Speed = DefaultSpeed
	}
	if cfg.Speed < 0 {
		return nil, ErrSpeedIsInvalid
	}
	if logger == nil {
		logger = slog.Default()
	}

	start := cfg.Start
	if start.Validate() != nil {
		start = registry.Home().Pose()
	}

	return &Client{
		speed:       cfg.Speed,
		failureRate: cfg.FailureRate,
		logger:      logger.With("component", "navsim"),
		pose:        start,
		randGen:     rand.Float64,
	}, nil
}

// Goto starts simulated travel toward the waypoint. The returned handle
// delivers the terminal outcome once the leg's travel time has elapsed, or
// earlier when the goal fails or is preempted.
func (c *Client) Goto(_ context.Context, wp waypoint.Waypoint) (ports.GoalHandle, error) {
	if err := wp.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	from := c.pose
	distance, err := from.Distance(wp.Pose())
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	duration := time.Duration(distance / c.speed * float64(time.Second))
	if duration < minLegDuration {
		duration = minLegDuration
	}

	leg := &activeLeg{
		from:     from,
		to:       wp.Pose(),
		started:  time.Now(),
		duration: duration,
	}
	c.leg = leg

	fails := c.randGen() < c.failureRate
	c.mu.Unlock()

	c.logger.Debug("goal accepted",
		"waypoint", wp.Name(), "distance", distance, "eta", duration)

	h := &handle{
		outcome:   make(chan ports.GoalOutcome, 1),
		preempted: make(chan struct{}),
	}
	go c.drive(h, leg, wp, fails)
	return h, nil
}

// Pose returns the robot's current position, interpolated along the active
// leg while travelling.
func (c *Client) Pose() (x, y float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.poseLocked()
	return p.X(), p.Y()
}

func (c *Client) drive(h *handle, leg *activeLeg, wp waypoint.Waypoint, fails bool) {
	travel := leg.duration
	if fails {
		// Abort somewhere along the leg.
		travel = time.Duration(float64(travel) * c.randGen())
	}

	timer := time.NewTimer(travel)
	defer timer.Stop()

	select {
	case <-h.preempted:
		c.freezePose(leg)
		c.logger.Info("goal preempted", "waypoint", wp.Name())
		h.finish(ports.GoalPreempted)

	case <-timer.C:
		if fails {
			c.freezePose(leg)
			c.logger.Warn("goal aborted", "waypoint", wp.Name())
			h.finish(ports.GoalFailed)
			return
		}
		c.arrive(leg)
		h.finish(ports.GoalSucceeded)
	}
}

// freezePose pins the robot where the leg was interrupted.
func (c *Client) freezePose(leg *activeLeg) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.leg == leg {
		c.pose = c.poseLocked()
		c.leg = nil
	}
}

func (c *Client) arrive(leg *activeLeg) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.leg == leg {
		c.pose = leg.to
		c.leg = nil
	}
}

func (c *Client) poseLocked() kernel.Pose {
	if c.leg == nil {
		return c.pose
	}

	fraction := float64(time.Since(c.leg.started)) / float64(c.leg.duration)
	p, err := c.leg.from.Interpolate(c.leg.to, fraction)
	if err != nil {
		return c.pose
	}
	return p
}

type handle struct {
	outcome   chan ports.GoalOutcome
	preempted chan struct{}
	cancel    sync.Once
	done      sync.Once
}

// Outcome returns the channel delivering the goal's terminal result.
func (h *handle) Outcome() <-chan ports.GoalOutcome {
	return h.outcome
}

// Cancel preempts the goal. Idempotent.
func (h *handle) Cancel() {
	h.cancel.Do(func() { close(h.preempted) })
}

func (h *handle) finish(outcome ports.GoalOutcome) {
	h.done.Do(func() {
		h.outcome <- outcome
		close(h.outcome)
	})
}
