package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("Add, Find, Remove round trip", func(t *testing.T) {
		registry := NewMemoryRegistry()

		session := Session{UserID: 1, Email: "one@example.com", LoggedInAt: time.Now()}
		require.NoError(t, registry.Add(ctx, session))

		found, err := registry.Find(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "one@example.com", found.Email)

		require.NoError(t, registry.Remove(ctx, 1))

		found, err = registry.Find(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Find of an unknown user is nil, not an error", func(t *testing.T) {
		registry := NewMemoryRegistry()

		found, err := registry.Find(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("Remove of an unknown user is a no-op", func(t *testing.T) {
		registry := NewMemoryRegistry()
		assert.NoError(t, registry.Remove(ctx, 42))
	})

	t.Run("All lists every active session", func(t *testing.T) {
		registry := NewMemoryRegistry()

		require.NoError(t, registry.Add(ctx, Session{UserID: 1, Email: "a@example.com"}))
		require.NoError(t, registry.Add(ctx, Session{UserID: 2, Email: "b@example.com"}))

		all, err := registry.All(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("Re-adding overwrites the previous session", func(t *testing.T) {
		registry := NewMemoryRegistry()

		require.NoError(t, registry.Add(ctx, Session{UserID: 1, Email: "old@example.com"}))
		require.NoError(t, registry.Add(ctx, Session{UserID: 1, Email: "new@example.com"}))

		all, err := registry.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "new@example.com", all[0].Email)
	})

	t.Run("Concurrent access", func(t *testing.T) {
		registry := NewMemoryRegistry()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(id uint) {
				defer wg.Done()
				_ = registry.Add(ctx, Session{UserID: id})
				_, _ = registry.Find(ctx, id)
				_, _ = registry.All(ctx)
				_ = registry.Remove(ctx, id)
			}(uint(i))
		}
		wg.Wait()

		all, err := registry.All(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
