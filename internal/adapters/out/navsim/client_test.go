package navsim_test

import (
	"testing"
	"time"

	"butler/internal/adapters/out/navsim"
	"butler/internal/core/domain/model/waypoint"
	"butler/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitOutcome(t *testing.T, h ports.GoalHandle) ports.GoalOutcome {
	t.Helper()
	select {
	case outcome := <-h.Outcome():
		return outcome
	case <-time.After(5 * time.Second):
		t.Fatal("goal did not finish in time")
		return ports.GoalUnknown
	}
}

func TestClient_Goto_Succeeds(t *testing.T) {
	registry := waypoint.DefaultRegistry()
	client, err := navsim.NewClient(registry, nil, navsim.Config{Speed: 1000})
	require.NoError(t, err)

	h, err := client.Goto(t.Context(), registry.Kitchen())
	require.NoError(t, err)

	assert.Equal(t, ports.GoalSucceeded, awaitOutcome(t, h))

	x, y := client.Pose()
	kitchen := registry.Kitchen().Pose()
	assert.InDelta(t, kitchen.X(), x, 1e-9)
	assert.InDelta(t, kitchen.Y(), y, 1e-9)
}

func TestClient_Goto_CancelPreempts(t *testing.T) {
	registry := waypoint.DefaultRegistry()
	// Slow enough that the leg is still in flight when we cancel.
	client, err := navsim.NewClient(registry, nil, navsim.Config{Speed: 0.5})
	require.NoError(t, err)

	h, err := client.Goto(t.Context(), registry.Kitchen())
	require.NoError(t, err)

	h.Cancel()
	assert.Equal(t, ports.GoalPreempted, awaitOutcome(t, h))

	// The robot stops short of the kitchen.
	x, y := client.Pose()
	kitchen := registry.Kitchen().Pose()
	moved := x != kitchen.X() || y != kitchen.Y()
	assert.True(t, moved, "pose should be frozen before the goal")
}

func TestClient_Goto_AlwaysFailing(t *testing.T) {
	registry := waypoint.DefaultRegistry()
	client, err := navsim.NewClient(registry, nil, navsim.Config{Speed: 1000, FailureRate: 1})
	require.NoError(t, err)

	h, err := client.Goto(t.Context(), registry.Kitchen())
	require.NoError(t, err)

	assert.Equal(t, ports.GoalFailed, awaitOutcome(t, h))
}

func TestClient_PoseInterpolatesAlongLeg(t *testing.T) {
	registry := waypoint.DefaultRegistry()
	client, err := navsim.NewClient(registry, nil, navsim.Config{Speed: 2})
	require.NoError(t, err)

	home := registry.Home().Pose()
	h, err := client.Goto(t.Context(), registry.Kitchen())
	require.NoError(t, err)
	defer func() {
		h.Cancel()
		<-h.Outcome()
	}()

	require.Eventually(t, func() bool {
		x, y := client.Pose()
		return x != home.X() || y != home.Y()
	}, 5*time.Second, time.Millisecond, "pose should advance while travelling")
}

func TestClient_CancelIsIdempotent(t *testing.T) {
	registry := waypoint.DefaultRegistry()
	client, err := navsim.NewClient(registry, nil, navsim.Config{Speed: 0.5})
	require.NoError(t, err)

	h, err := client.Goto(t.Context(), registry.Kitchen())
	require.NoError(t, err)

	h.Cancel()
	h.Cancel()
	assert.Equal(t, ports.GoalPreempted, awaitOutcome(t, h))
}

func TestNewClient_RejectsNegativeSpeed(t *testing.T) {
	_, err := navsim.NewClient(waypoint.DefaultRegistry(), nil, navsim.Config{Speed: -1})

	require.ErrorIs(t, err, navsim.ErrSpeedIsInvalid)
}
