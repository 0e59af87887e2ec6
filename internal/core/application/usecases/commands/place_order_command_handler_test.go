package commands_test

import (
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.Takeout, nil,
		kernel.NewUUID(), []commands.ItemSpec{pastaSpec()})

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := &recordingPublisher{}

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, publisher.published, 1)
	assert.True(t, publisher.published[0].ID().IsEqual(cmd.OrderID()))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewPlaceOrderCommandHandler(new(MockOrderUoWFactory), &recordingPublisher{})

	err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.Error(t, err)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.Takeout, nil,
		kernel.NewUUID(), []commands.ItemSpec{pastaSpec()})

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := &recordingPublisher{}

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.published)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.Takeout, nil,
		kernel.NewUUID(), []commands.ItemSpec{pastaSpec()})

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := &recordingPublisher{}

	h := commands.NewPlaceOrderCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Empty(t, publisher.published)
}
