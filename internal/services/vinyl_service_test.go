package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVinylService(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	service := NewVinylService()

	t.Run("List filters by name substring", func(t *testing.T) {
		createTestVinyl(t, "Kind of Blue", 29.99)
		createTestVinyl(t, "Blue Train", 24.99)
		createTestVinyl(t, "Giant Steps", 27.99)

		vinyls, err := service.List(VinylQuery{Page: 1, Limit: 10, Name: "Blue"}, 0)
		require.NoError(t, err)
		assert.Len(t, vinyls, 2)
	})

	t.Run("List rejects unknown sort columns", func(t *testing.T) {
		// An unlisted sortBy falls back to id ordering instead of reaching SQL
		vinyls, err := service.List(VinylQuery{Page: 1, Limit: 10, SortBy: "price; DROP TABLE vinyls"}, 0)
		require.NoError(t, err)
		require.NotEmpty(t, vinyls)
		assert.Equal(t, "Kind of Blue", vinyls[0].Name)
	})

	t.Run("Review preview keeps one review and skips the viewer's own", func(t *testing.T) {
		vinyl := createTestVinyl(t, "Previewed", 10.00)
		viewer := createTestUser(t, "viewer@example.com")
		other := createTestUser(t, "other@example.com")

		reviews := NewReviewService()
		_, err := reviews.AddOrUpdate(vinyl.ID, viewer.ID, 8, "mine")
		require.NoError(t, err)
		_, err = reviews.AddOrUpdate(vinyl.ID, other.ID, 6, "theirs")
		require.NoError(t, err)

		vinyls, err := service.List(VinylQuery{Page: 1, Limit: 10, Name: "Previewed"}, viewer.ID)
		require.NoError(t, err)
		require.Len(t, vinyls, 1)
		require.Len(t, vinyls[0].Reviews, 1)
		assert.Equal(t, other.ID, vinyls[0].Reviews[0].UserID)

		// Anonymous viewers just get the first review
		vinyls, err = service.List(VinylQuery{Page: 1, Limit: 10, Name: "Previewed"}, 0)
		require.NoError(t, err)
		require.Len(t, vinyls, 1)
		assert.Len(t, vinyls[0].Reviews, 1)
	})

	t.Run("Update leaves omitted fields alone", func(t *testing.T) {
		vinyl := createTestVinyl(t, "Partial", 12.00)

		newPrice := 14.50
		updated, err := service.Update(vinyl.ID, UpdateVinylData{Price: &newPrice})
		require.NoError(t, err)
		assert.Equal(t, 14.50, updated.Price)
		assert.Equal(t, "Partial", updated.Name)
	})

	t.Run("Update and Delete of a missing vinyl", func(t *testing.T) {
		_, err := service.Update(99999, UpdateVinylData{})
		assert.ErrorIs(t, err, ErrVinylNotFound)

		err = service.Delete(99999)
		assert.ErrorIs(t, err, ErrVinylNotFound)
	})
}
