package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pastaSpec() commands.ItemSpec {
	return commands.ItemSpec{
		ItemID:   kernel.NewUUID(),
		Name:     "carbonara",
		Quantity: 1,
	}
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()
	staffID := kernel.NewUUID()
	table := "12"

	cmd, err := commands.NewPlaceOrderCommand(orderID, locationID, order.DineIn, &table, staffID,
		[]commands.ItemSpec{pastaSpec(), pastaSpec()})

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, locationID, cmd.LocationID())
	assert.Equal(t, order.DineIn, cmd.Fulfillment())
	assert.Equal(t, "12", *cmd.TableLabel())
	assert.Equal(t, staffID, cmd.StaffID())
	assert.Len(t, cmd.Items(), 2)
	assert.Equal(t, order.Pending, cmd.Items()[0].Status())
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.Takeout, nil,
			kernel.NewUUID(), nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid item line", func(t *testing.T) {
		bad := pastaSpec()
		bad.Quantity = 0
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.Takeout, nil,
			kernel.NewUUID(), []commands.ItemSpec{bad})
		require.Error(t, err)
	})

	t.Run("invalid fulfillment", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), order.FulfillmentUnknown, nil,
			kernel.NewUUID(), []commands.ItemSpec{pastaSpec()})
		require.Error(t, err)
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID(), order.Takeout, nil,
			kernel.NewUUID(), []commands.ItemSpec{pastaSpec()})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestPlaceOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
