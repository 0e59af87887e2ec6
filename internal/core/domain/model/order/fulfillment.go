package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Fulfillment represents how a guest check is fulfilled.
type Fulfillment int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment type.
	FulfillmentUnknown Fulfillment = iota

	// DineIn is an order consumed at a table.
	DineIn

	// Takeout is an order picked up by the guest.
	Takeout

	// Delivery is an order delivered to the guest.
	Delivery
)

func getFulfillmentStrings() map[Fulfillment]string {
	return map[Fulfillment]string{
		FulfillmentUnknown: "unknown",
		DineIn:             "dine_in",
		Takeout:            "takeout",
		Delivery:           "delivery",
	}
}

// FulfillmentFromString parses the wire name of a fulfillment type
// ("dine_in", "takeout", "delivery").
func FulfillmentFromString(s string) (Fulfillment, error) {
	for f, str := range getFulfillmentStrings() {
		if str == s && f != FulfillmentUnknown {
			return f, nil
		}
	}
	return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"fulfillment is invalid",
		fmt.Errorf("%q is not a valid fulfillment type", s),
	)
}

// Validate checks if the Fulfillment value is one of the three known types.
func (f Fulfillment) Validate() error {
	switch f {
	case DineIn, Takeout, Delivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"fulfillment is invalid",
			fmt.Errorf("%d is not a valid fulfillment type", f),
		)
	}
}

// String returns the wire name of the fulfillment type, or "unknown".
func (f Fulfillment) String() string {
	if str, ok := getFulfillmentStrings()[f]; ok {
		return str
	}
	return "unknown"
}
