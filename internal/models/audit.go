package models

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"vinyl-store/internal/util"
)

const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditLog is an append-only record of every create/update/delete performed
// on the other entities. Rows are written by the callbacks below and are
// never updated or deleted by the application.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Action    string    `json:"action" gorm:"type:varchar(10);not null"`
	Entity    string    `json:"entity" gorm:"type:varchar(100);not null"`
	Details   string    `json:"details" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime;index"`
}

// RegisterAuditCallbacks hooks the audit writer into the create/update/delete
// pipelines of the given connection. AuditLog itself is excluded, so audit
// writes do not recurse. Failures are counted and logged, never surfaced:
// audit logging is observability, not a transactional participant.
func RegisterAuditCallbacks(db *gorm.DB) error {
	if err := db.Callback().Create().After("gorm:create").Register("vinylstore:audit_create", auditCallback(AuditActionCreate)); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("vinylstore:audit_update", auditCallback(AuditActionUpdate)); err != nil {
		return err
	}
	return db.Callback().Delete().After("gorm:delete").Register("vinylstore:audit_delete", auditCallback(AuditActionDelete))
}

func auditCallback(action string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil || db.Statement == nil || db.Statement.Schema == nil {
			return
		}
		if db.Statement.Schema.Name == "AuditLog" {
			return
		}
		if db.RowsAffected == 0 {
			return
		}

		// For deletes Statement.Dest still holds the loaded record, so the
		// snapshot is the row as it existed before deletion.
		details, err := json.Marshal(db.Statement.Dest)
		if err != nil {
			details = []byte("{}")
		}

		entry := &AuditLog{
			Action:  action,
			Entity:  db.Statement.Schema.Name,
			Details: string(details),
		}

		if err := db.Session(&gorm.Session{NewDB: true}).Create(entry).Error; err != nil {
			util.AuditWritesFailedTotal.Inc()
			zap.L().Warn("failed to write audit entry",
				zap.String("action", action),
				zap.String("entity", entry.Entity),
				zap.Error(err))
		}
	}
}
