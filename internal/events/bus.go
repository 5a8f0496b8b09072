// Package events provides the in-process event bus that decouples the
// purchase flow from its listeners.
package events

import (
	"sync"

	"go.uber.org/zap"

	"vinyl-store/internal/models"
)

// PurchaseCompleted is published after a successful purchase.
type PurchaseCompleted struct {
	User       models.User
	VinylName  string
	Count      int
	TotalPrice float64
}

// PurchaseCompletedHandler consumes PurchaseCompleted events.
type PurchaseCompletedHandler func(PurchaseCompleted)

// Bus dispatches events to subscribed handlers. Publishing is
// fire-and-forget: each handler runs on its own goroutine and a handler
// panic never reaches the publisher.
type Bus struct {
	mu       sync.RWMutex
	handlers []PurchaseCompletedHandler
	logger   *zap.Logger
}

func NewBus(logger *zap.Logger) *Bus {
	return &Bus{logger: logger}
}

// SubscribePurchaseCompleted registers a handler for purchase events.
func (b *Bus) SubscribePurchaseCompleted(handler PurchaseCompletedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// PublishPurchaseCompleted delivers the event to every subscriber without
// awaiting completion.
func (b *Bus) PublishPurchaseCompleted(event PurchaseCompleted) {
	b.mu.RLock()
	handlers := make([]PurchaseCompletedHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		go func(h PurchaseCompletedHandler) {
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("purchase event handler panicked",
						zap.Any("panic", r),
						zap.String("vinyl", event.VinylName))
				}
			}()
			h(event)
		}(handler)
	}
}
