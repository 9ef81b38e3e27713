package missionctl_test

import (
	"testing"
	"time"

	"butler/internal/core/application/missionctl"
	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, tableID string) order.DeliveryRecord {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), tableID, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.Start())
	require.NoError(t, o.Deliver())

	rec, err := order.NewDeliveryRecord(o, time.Now())
	require.NoError(t, err)
	return rec
}

func TestJournal_DrainBatch(t *testing.T) {
	t.Run("drains oldest first", func(t *testing.T) {
		j := missionctl.NewJournal()
		j.Record(newRecord(t, "table1"))
		j.Record(newRecord(t, "table2"))
		j.Record(newRecord(t, "table3"))

		batch := j.DrainBatch(2)

		require.Len(t, batch, 2)
		assert.Equal(t, "table1", batch[0].TableID)
		assert.Equal(t, "table2", batch[1].TableID)
		assert.Equal(t, 1, j.Len())
	})

	t.Run("zero max drains everything", func(t *testing.T) {
		j := missionctl.NewJournal()
		j.Record(newRecord(t, "table1"))
		j.Record(newRecord(t, "table2"))

		assert.Len(t, j.DrainBatch(0), 2)
		assert.Equal(t, 0, j.Len())
	})

	t.Run("empty journal returns nil", func(t *testing.T) {
		j := missionctl.NewJournal()

		assert.Nil(t, j.DrainBatch(10))
	})
}

func TestJournal_Requeue(t *testing.T) {
	j := missionctl.NewJournal()
	j.Record(newRecord(t, "table1"))
	j.Record(newRecord(t, "table2"))

	batch := j.DrainBatch(1)
	j.Record(newRecord(t, "table3"))
	j.Requeue(batch)

	drained := j.DrainBatch(0)
	require.Len(t, drained, 3)
	assert.Equal(t, "table1", drained[0].TableID)
	assert.Equal(t, "table2", drained[1].TableID)
	assert.Equal(t, "table3", drained[2].TableID)
}
