package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"vinyl-store/internal/models"
)

func TestBus(t *testing.T) {
	t.Run("Every subscriber receives the event", func(t *testing.T) {
		bus := NewBus(zap.NewNop())

		first := make(chan PurchaseCompleted, 1)
		second := make(chan PurchaseCompleted, 1)
		bus.SubscribePurchaseCompleted(func(e PurchaseCompleted) { first <- e })
		bus.SubscribePurchaseCompleted(func(e PurchaseCompleted) { second <- e })

		bus.PublishPurchaseCompleted(PurchaseCompleted{
			User:       models.User{Email: "buyer@example.com"},
			VinylName:  "Blue Train",
			Count:      1,
			TotalPrice: 24.99,
		})

		for _, ch := range []chan PurchaseCompleted{first, second} {
			select {
			case event := <-ch:
				assert.Equal(t, "Blue Train", event.VinylName)
			case <-time.After(2 * time.Second):
				t.Fatal("subscriber did not receive the event")
			}
		}
	})

	t.Run("A panicking handler does not reach the publisher or other handlers", func(t *testing.T) {
		bus := NewBus(zap.NewNop())

		survived := make(chan PurchaseCompleted, 1)
		bus.SubscribePurchaseCompleted(func(PurchaseCompleted) { panic("smtp exploded") })
		bus.SubscribePurchaseCompleted(func(e PurchaseCompleted) { survived <- e })

		assert.NotPanics(t, func() {
			bus.PublishPurchaseCompleted(PurchaseCompleted{VinylName: "Giant Steps"})
		})

		select {
		case event := <-survived:
			assert.Equal(t, "Giant Steps", event.VinylName)
		case <-time.After(2 * time.Second):
			t.Fatal("healthy subscriber was not delivered to")
		}
	})

	t.Run("Publish with no subscribers is a no-op", func(t *testing.T) {
		bus := NewBus(zap.NewNop())
		assert.NotPanics(t, func() {
			bus.PublishPurchaseCompleted(PurchaseCompleted{VinylName: "Moanin'"})
		})
	})
}
