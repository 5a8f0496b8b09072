package services

import (
	"vinyl-store/internal/models"
)

type AuditService struct{}

func NewAuditService() *AuditService {
	return &AuditService{}
}

// List returns every audit entry, newest first.
func (s *AuditService) List() ([]models.AuditLog, error) {
	var entries []models.AuditLog
	if err := models.DB.Order("timestamp DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
