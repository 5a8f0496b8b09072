package handlers

import (
	"github.com/gin-gonic/gin"

	"vinyl-store/internal/services"
)

type LogsHandler struct {
	auditService *services.AuditService
}

func NewLogsHandler() *LogsHandler {
	return &LogsHandler{auditService: services.NewAuditService()}
}

// List returns the audit trail, newest first. Admin only.
func (h *LogsHandler) List(c *gin.Context) {
	logs, err := h.auditService.List()
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to list audit logs"})
		return
	}

	c.JSON(200, logs)
}
