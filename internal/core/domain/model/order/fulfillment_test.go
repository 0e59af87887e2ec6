package order_test

import (
	"testing"

	"kitchen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFulfillmentFromString(t *testing.T) {
	t.Run("should parse wire names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Fulfillment
		}{
			{"dine_in", order.DineIn},
			{"takeout", order.Takeout},
			{"delivery", order.Delivery},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				f, err := order.FulfillmentFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, f)
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "dine-in", "pickup"} {
			f, err := order.FulfillmentFromString(input)

			require.Error(t, err)
			assert.Equal(t, order.FulfillmentUnknown, f)
		}
	})
}

func TestFulfillment_Validate(t *testing.T) {
	for _, f := range []order.Fulfillment{order.DineIn, order.Takeout, order.Delivery} {
		require.NoError(t, f.Validate())
	}
	require.Error(t, order.FulfillmentUnknown.Validate())
	require.Error(t, order.Fulfillment(42).Validate())
}

func TestFulfillment_String(t *testing.T) {
	assert.Equal(t, "dine_in", order.DineIn.String())
	assert.Equal(t, "takeout", order.Takeout.String())
	assert.Equal(t, "delivery", order.Delivery.String())
	assert.Equal(t, "unknown", order.FulfillmentUnknown.String())
}
