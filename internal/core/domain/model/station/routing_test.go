package station_test

import (
	"testing"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
)

func TestRoutingTable(t *testing.T) {
	menuItemID := kernel.NewUUID()
	grillID := kernel.NewUUID()
	fryerID := kernel.NewUUID()

	t.Run("assigned menu item routes to its stations only", func(t *testing.T) {
		table := station.RoutingTable{menuItemID: {grillID}}

		assert.True(t, table.HasAssignment(menuItemID))
		assert.True(t, table.Routes(menuItemID, grillID))
		assert.False(t, table.Routes(menuItemID, fryerID))
		assert.Equal(t, []kernel.UUID{grillID}, table.StationsFor(menuItemID))
	})

	t.Run("menu item can route to multiple stations", func(t *testing.T) {
		table := station.RoutingTable{menuItemID: {grillID, fryerID}}

		assert.True(t, table.Routes(menuItemID, grillID))
		assert.True(t, table.Routes(menuItemID, fryerID))
	})

	t.Run("absent entry means no assignment", func(t *testing.T) {
		table := station.RoutingTable{}

		assert.False(t, table.HasAssignment(menuItemID))
		assert.False(t, table.Routes(menuItemID, grillID))
		assert.Empty(t, table.StationsFor(menuItemID))
	})

	t.Run("empty station set is not an assignment", func(t *testing.T) {
		table := station.RoutingTable{menuItemID: {}}

		assert.False(t, table.HasAssignment(menuItemID))
		assert.False(t, table.Routes(menuItemID, grillID))
	})
}
