package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinyl-store/internal/config"
	"vinyl-store/internal/models"
)

// setupTestDB initializes a test database
func setupTestDB(t *testing.T) *config.Config {
	tmpDir := os.TempDir()
	testDBPath := fmt.Sprintf("%s/vinylstore_test_%d.db", tmpDir, time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: testDBPath,
			},
		},
		JWT: config.JWTConfig{
			Secret:    "test-secret-key-for-testing-only",
			ExpiresIn: "24h",
			Issuer:    "vinyl-store-test",
		},
		Security: config.SecurityConfig{
			BcryptCost: 10,
		},
		Stripe: config.StripeConfig{
			Currency: "usd",
		},
	}

	err := models.InitDB(cfg)
	require.NoError(t, err)

	return cfg
}

// cleanupTestDB cleans up test database
func cleanupTestDB(t *testing.T, cfg *config.Config) {
	if models.DB != nil {
		sqlDB, err := models.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
		if cfg != nil && cfg.Database.Type == "sqlite" {
			os.Remove(cfg.Database.SQLite.Path)
		}
	}
	models.DB = nil
}

func createTestUser(t *testing.T, email string) *models.User {
	user := &models.User{Email: email, FirstName: "Test", LastName: "User"}
	require.NoError(t, models.DB.Create(user).Error)
	return user
}

func createTestVinyl(t *testing.T, name string, price float64) *models.Vinyl {
	vinyl := &models.Vinyl{
		Name:        name,
		AuthorName:  "Test Artist",
		Description: "A test record",
		Price:       price,
	}
	require.NoError(t, models.DB.Create(vinyl).Error)
	return vinyl
}

func TestReviewService(t *testing.T) {
	cfg := setupTestDB(t)
	defer cleanupTestDB(t, cfg)

	service := NewReviewService()

	t.Run("AddOrUpdate creates a review and refreshes the average", func(t *testing.T) {
		user := createTestUser(t, "reviewer1@example.com")
		vinyl := createTestVinyl(t, "Kind of Blue", 29.99)

		review, err := service.AddOrUpdate(vinyl.ID, user.ID, 8, "Great pressing")
		require.NoError(t, err)
		assert.NotZero(t, review.ID)
		assert.Equal(t, 8, review.Rating)

		var stored models.Vinyl
		require.NoError(t, models.DB.First(&stored, vinyl.ID).Error)
		assert.Equal(t, 8.0, stored.AverageScore)
	})

	t.Run("AddOrUpdate replaces an existing review in place", func(t *testing.T) {
		user := createTestUser(t, "reviewer2@example.com")
		vinyl := createTestVinyl(t, "Blue Train", 24.99)

		first, err := service.AddOrUpdate(vinyl.ID, user.ID, 3, "Scratched copy")
		require.NoError(t, err)

		second, err := service.AddOrUpdate(vinyl.ID, user.ID, 9, "Replacement arrived, sounds great")
		require.NoError(t, err)

		// Same row, new content
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 9, second.Rating)

		var count int64
		models.DB.Model(&models.Review{}).Where("vinyl_id = ?", vinyl.ID).Count(&count)
		assert.Equal(t, int64(1), count)

		var stored models.Vinyl
		require.NoError(t, models.DB.First(&stored, vinyl.ID).Error)
		assert.Equal(t, 9.0, stored.AverageScore)
	})

	t.Run("Average is rounded to two decimals and capped at 9.99", func(t *testing.T) {
		vinyl := createTestVinyl(t, "A Love Supreme", 34.99)

		userA := createTestUser(t, "avg-a@example.com")
		userB := createTestUser(t, "avg-b@example.com")
		userC := createTestUser(t, "avg-c@example.com")

		_, err := service.AddOrUpdate(vinyl.ID, userA.ID, 7, "ok")
		require.NoError(t, err)
		_, err = service.AddOrUpdate(vinyl.ID, userB.ID, 8, "good")
		require.NoError(t, err)
		_, err = service.AddOrUpdate(vinyl.ID, userC.ID, 7, "ok")
		require.NoError(t, err)

		var stored models.Vinyl
		require.NoError(t, models.DB.First(&stored, vinyl.ID).Error)
		// 22/3 = 7.333... -> 7.33
		assert.Equal(t, 7.33, stored.AverageScore)

		// All-tens averages to 10 but the cache caps at 9.99
		capped := createTestVinyl(t, "Giant Steps", 27.99)
		_, err = service.AddOrUpdate(capped.ID, userA.ID, 10, "perfect")
		require.NoError(t, err)
		_, err = service.AddOrUpdate(capped.ID, userB.ID, 10, "perfect")
		require.NoError(t, err)

		require.NoError(t, models.DB.First(&stored, capped.ID).Error)
		assert.Equal(t, 9.99, stored.AverageScore)
	})

	t.Run("AddOrUpdate for a missing vinyl", func(t *testing.T) {
		user := createTestUser(t, "reviewer3@example.com")

		_, err := service.AddOrUpdate(99999, user.ID, 5, "no such record")
		assert.ErrorIs(t, err, ErrVinylNotFound)
	})

	t.Run("ListByVinyl returns the review display shape", func(t *testing.T) {
		user := createTestUser(t, "lister@example.com")
		vinyl := createTestVinyl(t, "Head Hunters", 22.50)

		_, err := service.AddOrUpdate(vinyl.ID, user.ID, 6, "funky")
		require.NoError(t, err)

		reviews, err := service.ListByVinyl(vinyl.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, user.ID, reviews[0].UserID)
		assert.Equal(t, vinyl.ID, reviews[0].VinylID)
		assert.Equal(t, "funky", reviews[0].Comment)

		_, err = service.ListByVinyl(99999)
		assert.ErrorIs(t, err, ErrVinylNotFound)
	})

	t.Run("Delete rejects a review that belongs to another vinyl", func(t *testing.T) {
		user := createTestUser(t, "deleter@example.com")
		vinylA := createTestVinyl(t, "Moanin'", 19.99)
		vinylB := createTestVinyl(t, "Somethin' Else", 21.99)

		review, err := service.AddOrUpdate(vinylA.ID, user.ID, 5, "nice")
		require.NoError(t, err)

		err = service.Delete(vinylB.ID, review.ID)
		assert.ErrorIs(t, err, ErrReviewNotFound)

		// The review survives a mismatched delete
		var count int64
		models.DB.Model(&models.Review{}).Where("id = ?", review.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Delete removes the review and refreshes the average", func(t *testing.T) {
		vinyl := createTestVinyl(t, "Maiden Voyage", 25.00)
		userA := createTestUser(t, "del-a@example.com")
		userB := createTestUser(t, "del-b@example.com")

		low, err := service.AddOrUpdate(vinyl.ID, userA.ID, 2, "warped")
		require.NoError(t, err)
		_, err = service.AddOrUpdate(vinyl.ID, userB.ID, 8, "lovely")
		require.NoError(t, err)

		require.NoError(t, service.Delete(vinyl.ID, low.ID))

		var stored models.Vinyl
		require.NoError(t, models.DB.First(&stored, vinyl.ID).Error)
		assert.Equal(t, 8.0, stored.AverageScore)
	})
}
