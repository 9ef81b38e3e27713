package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"butler/internal/core/application/usecases/commands"
	"butler/internal/core/domain/model/kernel"
	"butler/internal/core/domain/model/order"
	"butler/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJournal struct{ mock.Mock }

func (m *MockJournal) DrainBatch(max int) []order.DeliveryRecord {
	args := m.Called(max)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]order.DeliveryRecord)
}

func (m *MockJournal) Requeue(batch []order.DeliveryRecord) {
	m.Called(batch)
}

type MockDeliveryLogRepository struct{ mock.Mock }

func (m *MockDeliveryLogRepository) Add(ctx context.Context, records []order.DeliveryRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockDeliveryLogRepository) GetRecent(_ context.Context, _ int) ([]order.DeliveryRecord, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDeliveryUoW struct{ mock.Mock }

func (m *MockDeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDeliveryUoW) DeliveryLogRepository() ports.DeliveryLogRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryLogRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

func deliveredRecord(t *testing.T, tableID string) order.DeliveryRecord {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), tableID, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.Start())
	require.NoError(t, o.Deliver())

	rec, err := order.NewDeliveryRecord(o, time.Now())
	require.NoError(t, err)
	return rec
}

func TestArchiveDeliveriesCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewArchiveDeliveriesCommand(10)
	batch := []order.DeliveryRecord{deliveredRecord(t, "table1"), deliveredRecord(t, "table2")}

	journal := new(MockJournal)
	journal.On("DrainBatch", 10).Return(batch).Once()

	repo := new(MockDeliveryLogRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryLogRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, batch).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveDeliveriesCommandHandler(journal, factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	journal.AssertNotCalled(t, "Requeue", mock.Anything)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestArchiveDeliveriesCommandHandler_Handle_EmptyJournal(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewArchiveDeliveriesCommand(10)

	journal := new(MockJournal)
	journal.On("DrainBatch", 10).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)

	h := commands.NewArchiveDeliveriesCommandHandler(journal, factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestArchiveDeliveriesCommandHandler_Handle_PersistErrorRequeues(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewArchiveDeliveriesCommand(10)
	batch := []order.DeliveryRecord{deliveredRecord(t, "table1")}

	journal := new(MockJournal)
	mock.InOrder(
		journal.On("DrainBatch", 10).Return(batch).Once(),
		journal.On("Requeue", batch).Once(),
	)

	repo := new(MockDeliveryLogRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryLogRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, batch).Return(errors.New("insert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveDeliveriesCommandHandler(journal, factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	journal.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewArchiveDeliveriesCommand_InvalidBatchSize(t *testing.T) {
	_, err := commands.NewArchiveDeliveriesCommand(0)

	require.ErrorIs(t, err, commands.ErrBatchSizeIsInvalid)
}
