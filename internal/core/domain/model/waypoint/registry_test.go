package waypoint_test

import (
	"os"
	"path/filepath"
	"testing"

	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/waypoint"
	"butler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPose(t *testing.T, x, y, w float64) kernel.Pose {
	t.Helper()
	pose, err := kernel.NewPose(x, y, w)
	require.NoError(t, err)
	return pose
}

func mustWaypoint(t *testing.T, name string, x, y, w float64) waypoint.Waypoint {
	t.Helper()
	wp, err := waypoint.NewWaypoint(name, mustPose(t, x, y, w))
	require.NoError(t, err)
	return wp
}

func TestNewWaypoint(t *testing.T) {
	t.Run("should create valid waypoint", func(t *testing.T) {
		wp, err := waypoint.NewWaypoint("table1", mustPose(t, 12.08, 4.34, 0.64))

		require.NoError(t, err)
		require.NoError(t, wp.Validate())
		assert.Equal(t, "table1", wp.Name())
		assert.True(t, wp.IsTable())
		assert.False(t, wp.IsKitchen())
		assert.False(t, wp.IsHome())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := waypoint.NewWaypoint("", mustPose(t, 0, 0, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject names with spaces or uppercase", func(t *testing.T) {
		_, err := waypoint.NewWaypoint("Table 1", mustPose(t, 0, 0, 1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero value pose", func(t *testing.T) {
		var pose kernel.Pose

		_, err := waypoint.NewWaypoint("table1", pose)

		require.Error(t, err)
	})

	t.Run("zero value waypoint fails validation", func(t *testing.T) {
		var wp waypoint.Waypoint

		require.Error(t, wp.Validate())
	})
}

func TestNewRegistry(t *testing.T) {
	kitchen := mustWaypoint(t, "kitchen", 7.67, -6.01, 1.0)
	home := mustWaypoint(t, "home", 0, 0, 1.0)
	table1 := mustWaypoint(t, "table1", 12.08, 4.34, 0.64)

	t.Run("should build registry with reserved waypoints and a table", func(t *testing.T) {
		registry, err := waypoint.NewRegistry([]waypoint.Waypoint{kitchen, home, table1})

		require.NoError(t, err)
		assert.Equal(t, "kitchen", registry.Kitchen().Name())
		assert.Equal(t, "home", registry.Home().Name())
	})

	t.Run("should require kitchen", func(t *testing.T) {
		_, err := waypoint.NewRegistry([]waypoint.Waypoint{home, table1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "kitchen")
	})

	t.Run("should require home", func(t *testing.T) {
		_, err := waypoint.NewRegistry([]waypoint.Waypoint{kitchen, table1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "home")
	})

	t.Run("should require at least one table", func(t *testing.T) {
		_, err := waypoint.NewRegistry([]waypoint.Waypoint{kitchen, home})

		require.Error(t, err)
	})

	t.Run("should reject duplicates", func(t *testing.T) {
		_, err := waypoint.NewRegistry([]waypoint.Waypoint{kitchen, home, table1, table1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate")
	})
}

func TestDefaultRegistry(t *testing.T) {
	registry := waypoint.DefaultRegistry()

	t.Run("contains the cafe layout", func(t *testing.T) {
		assert.Equal(t, []string{"table1", "table2", "table3"}, registry.TableNames())

		kitchen := registry.Kitchen()
		assert.InDelta(t, 7.675238132476807, kitchen.Pose().X(), 1e-9)
		assert.InDelta(t, -6.01118278503418, kitchen.Pose().Y(), 1e-9)

		home := registry.Home()
		assert.InDelta(t, 0.0, home.Pose().X(), 1e-9)
		assert.InDelta(t, 0.0, home.Pose().Y(), 1e-9)
	})

	t.Run("lookup by name", func(t *testing.T) {
		wp, err := registry.Get("table2")

		require.NoError(t, err)
		assert.InDelta(t, -10.501110076904297, wp.Pose().X(), 1e-9)
	})

	t.Run("unknown name yields not found", func(t *testing.T) {
		_, err := registry.Get("table9")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("reserved names are not tables", func(t *testing.T) {
		_, err := registry.Table("kitchen")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("table lookup", func(t *testing.T) {
		wp, err := registry.Table("table3")

		require.NoError(t, err)
		assert.True(t, wp.IsTable())
	})
}

func TestLoadRegistry(t *testing.T) {
	t.Run("should load registry from JSON file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "waypoints.json")
		content := `[
			{"name": "kitchen", "x": 1.5, "y": -2.5, "w": 1.0},
			{"name": "home", "x": 0, "y": 0, "w": 1.0},
			{"name": "table1", "x": 3.0, "y": 4.0, "w": 0.5},
			{"name": "table2", "x": -3.0, "y": 4.0, "w": 0.5}
		]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		registry, err := waypoint.LoadRegistry(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"table1", "table2"}, registry.TableNames())
		assert.InDelta(t, 1.5, registry.Kitchen().Pose().X(), 1e-9)
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		_, err := waypoint.LoadRegistry(filepath.Join(t.TempDir(), "absent.json"))

		require.Error(t, err)
	})

	t.Run("should fail on malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		_, err := waypoint.LoadRegistry(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing waypoints file")
	})

	t.Run("should fail when kitchen is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nokitchen.json")
		content := `[
			{"name": "home", "x": 0, "y": 0, "w": 1.0},
			{"name": "table1", "x": 3.0, "y": 4.0, "w": 0.5}
		]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		_, err := waypoint.LoadRegistry(path)

		require.Error(t, err)
	})
}
