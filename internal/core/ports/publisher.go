package ports

import "kitchen/internal/core/domain/model/order"

// OrderEventPublisher fans out committed order changes to subscribed
// station terminals. Publishing happens after the transaction commits and
// must never block: a slow subscriber is skipped, not waited on.
type OrderEventPublisher interface {
	OrderChanged(o *order.Order)
}
