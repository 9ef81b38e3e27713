package commands_test

import (
	"testing"

	"butler/internal/core/application/usecases/commands"
	"butler/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewAddOrderCommand(id, "table1")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, "table1", cmd.TableID())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewAddOrderCommand(invalidID, "table1")

		require.Error(t, err)
	})

	t.Run("should fail with empty table", func(t *testing.T) {
		_, err := commands.NewAddOrderCommand(kernel.NewUUID(), "")

		require.ErrorIs(t, err, commands.ErrTableIDIsRequired)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AddOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrAddOrderCommandIsNotConstructed)
	})
}
