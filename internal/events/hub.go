// Package events provides the in-process fan-out of committed order changes
// to subscribed station terminals.
package events

import (
	"context"
	"sync"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// subscriberBuffer is the per-subscriber channel depth. A terminal that
// falls further behind misses events; it resynchronizes by re-reading its
// queue.
const subscriberBuffer = 16

// Hub broadcasts committed order changes to station terminal streams,
// keyed by location. It implements ports.OrderEventPublisher.
//
// Delivery is best-effort and never blocks the publisher: a subscriber
// whose buffer is full is skipped. Subscribers are removed and their
// channels closed when their context ends.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[kernel.UUID][]chan *order.Order
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[kernel.UUID][]chan *order.Order),
	}
}

// Subscribe registers a client for a location's order changes. The returned
// channel is closed when ctx ends.
func (h *Hub) Subscribe(ctx context.Context, locationID kernel.UUID) <-chan *order.Order {
	ch := make(chan *order.Order, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[locationID] = append(h.subscribers[locationID], ch)
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.remove(locationID, ch)
	}()

	return ch
}

// OrderChanged broadcasts a committed order change to the location's
// subscribers without blocking. The read lock is held across the sends:
// remove closes channels under the write lock, so a channel can never be
// closed mid-broadcast. The sends never block, so neither does the lock.
func (h *Hub) OrderChanged(o *order.Order) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers[o.LocationID()] {
		select {
		case ch <- o:
		default:
			// Buffer full, the subscriber is behind. Skip it.
		}
	}
}

func (h *Hub) remove(locationID kernel.UUID, ch chan *order.Order) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.subscribers[locationID]
	for i, c := range clients {
		if c == ch {
			h.subscribers[locationID] = append(clients[:i], clients[i+1:]...)
			close(ch)
			break
		}
	}

	if len(h.subscribers[locationID]) == 0 {
		delete(h.subscribers, locationID)
	}
}
