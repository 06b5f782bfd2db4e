package feed

import (
	"errors"
	"sync"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/ports"
)

// ErrUnknownSubscription is returned when a token was never issued or was already released
var ErrUnknownSubscription = errors.New("unknown sensor subscription")

// Hub is an in-process SensorFeed.
// Producers (sensor pump, MQTT subscriber) call Publish; subscribers are
// invoked synchronously on the publishing goroutine.
type Hub struct {
	mu        sync.RWMutex
	nextToken ports.SubscriptionToken
	handlers  map[ports.SubscriptionToken]func(lux float64)
	latest    float64
	hasLatest bool
}

// NewHub creates a hub with no subscribers and no reading
func NewHub() *Hub {
	return &Hub{
		handlers: make(map[ports.SubscriptionToken]func(lux float64)),
	}
}

// Subscribe registers fn and returns its token
func (h *Hub) Subscribe(fn func(lux float64)) ports.SubscriptionToken {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextToken++
	h.handlers[h.nextToken] = fn
	return h.nextToken
}

// Unsubscribe releases a token
func (h *Hub) Unsubscribe(token ports.SubscriptionToken) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.handlers[token]; !ok {
		return ErrUnknownSubscription
	}
	delete(h.handlers, token)
	return nil
}

// Latest returns the last published sample
func (h *Hub) Latest() (float64, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.latest, h.hasLatest
}

// Publish records lux as the latest value and fans it out.
// Handlers run without the hub lock held so they may unsubscribe.
func (h *Hub) Publish(lux float64) {
	h.mu.Lock()
	h.latest = lux
	h.hasLatest = true
	handlers := make([]func(float64), 0, len(h.handlers))
	for _, fn := range h.handlers {
		handlers = append(handlers, fn)
	}
	h.mu.Unlock()

	for _, fn := range handlers {
		fn(lux)
	}
}

// Subscribers returns the number of live subscriptions
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.handlers)
}
