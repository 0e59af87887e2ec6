package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddStationCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		stationID := kernel.NewUUID()
		locationID := kernel.NewUUID()

		cmd, err := commands.NewAddStationCommand(stationID, locationID, "Grill", 2, false)

		require.NoError(t, err)
		assert.Equal(t, stationID, cmd.StationID())
		assert.Equal(t, locationID, cmd.LocationID())
		assert.Equal(t, "Grill", cmd.Name())
		assert.Equal(t, 2, cmd.SortOrder())
		assert.False(t, cmd.IsDefault())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewAddStationCommand(kernel.NewUUID(), kernel.NewUUID(), "", 0, false)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddStationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddStationCommand(kernel.NewUUID(), kernel.NewUUID(), "Grill", 1, false)

	repo := new(MockStationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*station.Station")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddStationCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddStationCommandHandler_Handle_SecondDefaultRejected(t *testing.T) {
	ctx := t.Context()
	locationID := kernel.NewUUID()
	cmd, _ := commands.NewAddStationCommand(kernel.NewUUID(), locationID, "Expo 2", 0, true)

	existing, err := station.NewStation(kernel.NewUUID(), locationID, "Expo", 0, true)
	require.NoError(t, err)

	repo := new(MockStationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationRepository").Return(repo).Once(),
		repo.On("GetDefault", mock.Anything, locationID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddStationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDefaultStationAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddStationCommandHandler_Handle_FirstDefaultAccepted(t *testing.T) {
	ctx := t.Context()
	locationID := kernel.NewUUID()
	cmd, _ := commands.NewAddStationCommand(kernel.NewUUID(), locationID, "Expo", 0, true)

	repo := new(MockStationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StationRepository").Return(repo).Once(),
		repo.On("GetDefault", mock.Anything, locationID).
			Return(nil, errs.NewObjectNotFoundError("locationId", locationID.String())).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*station.Station")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddStationCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
