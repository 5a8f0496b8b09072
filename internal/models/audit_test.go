package models

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vinyl-store/internal/config"
)

func setupAuditTestDB(t *testing.T) *config.Config {
	tmpDir := os.TempDir()
	testDBPath := fmt.Sprintf("%s/vinylstore_audit_test_%d.db", tmpDir, time.Now().UnixNano())

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Type: "sqlite",
			SQLite: config.SQLiteConfig{
				Path: testDBPath,
			},
		},
	}

	require.NoError(t, InitDB(cfg))
	require.NoError(t, RegisterAuditCallbacks(DB))

	t.Cleanup(func() {
		sqlDB, err := DB.DB()
		if err == nil {
			sqlDB.Close()
		}
		os.Remove(testDBPath)
		DB = nil
	})

	return cfg
}

func auditEntries(t *testing.T, action, entity string) []AuditLog {
	var entries []AuditLog
	require.NoError(t, DB.Where("action = ? AND entity = ?", action, entity).Find(&entries).Error)
	return entries
}

func TestAuditCallbacks(t *testing.T) {
	setupAuditTestDB(t)

	t.Run("Create writes a CREATE entry with the row snapshot", func(t *testing.T) {
		vinyl := &Vinyl{Name: "Waltz for Debby", AuthorName: "Bill Evans", Description: "Live at the Village Vanguard", Price: 27.50}
		require.NoError(t, DB.Create(vinyl).Error)

		entries := auditEntries(t, AuditActionCreate, "Vinyl")
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Details, "Waltz for Debby")
		assert.False(t, entries[0].Timestamp.IsZero())
	})

	t.Run("Update writes an UPDATE entry", func(t *testing.T) {
		user := &User{Email: "audited@example.com"}
		require.NoError(t, DB.Create(user).Error)

		user.FirstName = "Audited"
		require.NoError(t, DB.Save(user).Error)

		entries := auditEntries(t, AuditActionUpdate, "User")
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Details, "Audited")
	})

	t.Run("Delete writes a DELETE entry with the pre-delete snapshot", func(t *testing.T) {
		vinyl := &Vinyl{Name: "Ascension", AuthorName: "John Coltrane", Description: "Free jazz landmark", Price: 31.00}
		require.NoError(t, DB.Create(vinyl).Error)

		require.NoError(t, DB.Delete(vinyl).Error)

		entries := auditEntries(t, AuditActionDelete, "Vinyl")
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Details, "Ascension")
	})

	t.Run("Audit writes do not audit themselves", func(t *testing.T) {
		entries := auditEntries(t, AuditActionCreate, "AuditLog")
		assert.Empty(t, entries)
	})

	t.Run("A no-op update writes nothing", func(t *testing.T) {
		before := len(auditEntries(t, AuditActionUpdate, "Vinyl"))

		// No row with this id, so RowsAffected stays zero
		DB.Model(&Vinyl{}).Where("id = ?", 99999).Update("price", 1.00)

		after := len(auditEntries(t, AuditActionUpdate, "Vinyl"))
		assert.Equal(t, before, after)
	})
}

func TestForeignKeyCascades(t *testing.T) {
	setupAuditTestDB(t)

	user := &User{Email: "cascade@example.com"}
	require.NoError(t, DB.Create(user).Error)
	vinyl := &Vinyl{Name: "Nefertiti", AuthorName: "Miles Davis", Description: "Second great quintet", Price: 28.00}
	require.NoError(t, DB.Create(vinyl).Error)

	review := &Review{Rating: 9, Comment: "essential", UserID: user.ID, VinylID: vinyl.ID}
	require.NoError(t, DB.Create(review).Error)
	purchase := &Purchase{UserID: user.ID, VinylID: vinyl.ID, Amount: 1, MoneySpent: 28.00}
	require.NoError(t, DB.Create(purchase).Error)

	require.NoError(t, DB.Delete(user).Error)

	var reviewCount, purchaseCount int64
	DB.Model(&Review{}).Where("user_id = ?", user.ID).Count(&reviewCount)
	DB.Model(&Purchase{}).Where("user_id = ?", user.ID).Count(&purchaseCount)
	assert.Zero(t, reviewCount)
	assert.Zero(t, purchaseCount)

	// Cascaded child deletes happen inside the database, so only the user
	// delete shows up in the audit trail.
	assert.Empty(t, auditEntries(t, AuditActionDelete, "Review"))
	assert.Empty(t, auditEntries(t, AuditActionDelete, "Purchase"))
	assert.Len(t, auditEntries(t, AuditActionDelete, "User"), 1)
}
