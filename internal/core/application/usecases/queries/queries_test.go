package queries_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListVisibleOrdersQuery(t *testing.T) {
	t.Run("valid station id", func(t *testing.T) {
		stationID := kernel.NewUUID()

		query, err := queries.NewListVisibleOrdersQuery(stationID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, stationID, query.StationID())
	})

	t.Run("zero station id", func(t *testing.T) {
		_, err := queries.NewListVisibleOrdersQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		query := queries.ListVisibleOrdersQuery{}
		require.ErrorIs(t, query.Validate(), queries.ErrListVisibleOrdersQueryIsNotConstructed)
	})
}

func TestNewGetActiveOrdersQuery(t *testing.T) {
	t.Run("valid location id", func(t *testing.T) {
		locationID := kernel.NewUUID()

		query, err := queries.NewGetActiveOrdersQuery(locationID)

		require.NoError(t, err)
		assert.Equal(t, locationID, query.LocationID())
	})

	t.Run("zero location id", func(t *testing.T) {
		_, err := queries.NewGetActiveOrdersQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetStationQuery(t *testing.T) {
	t.Run("valid station id", func(t *testing.T) {
		stationID := kernel.NewUUID()

		query, err := queries.NewGetStationQuery(stationID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, stationID, query.StationID())
	})

	t.Run("zero station id", func(t *testing.T) {
		_, err := queries.NewGetStationQuery(kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewListStationsQuery(t *testing.T) {
	t.Run("valid location id", func(t *testing.T) {
		locationID := kernel.NewUUID()

		query, err := queries.NewListStationsQuery(locationID)

		require.NoError(t, err)
		assert.Equal(t, locationID, query.LocationID())
	})

	t.Run("zero location id", func(t *testing.T) {
		_, err := queries.NewListStationsQuery(kernel.UUID{})
		require.Error(t, err)
	})
}
