package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/srhafid/BookApi/internal/models"

	"gorm.io/gorm"
)

// AuditService writes mutation and login events to the audit_logs table
// from a background worker. Entries are dropped when the channel is
// full rather than blocking a request.
type AuditService struct {
	db     *gorm.DB
	logger *slog.Logger
	ch     chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:     db,
		logger: logger,
		ch:     make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry := <-s.ch:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "action", entry.Action, "error", err)
			}
		}
	}
}

func (s *AuditService) LogAction(userID *uint, action, entityID string, details interface{}, ip string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.ch <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}
