package repository

import "b4nkd-backend/internal/audit/domain"

// SystemLogRepository defines the interface for audit log persistence
type SystemLogRepository interface {
	// Create appends one audit entry
	Create(entry *domain.SystemLog) error

	// FindRecent returns the newest entries, newest first
	FindRecent(limit int) ([]*domain.SystemLog, error)
}
