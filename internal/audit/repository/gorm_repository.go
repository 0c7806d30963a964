package repository

import (
	"time"

	"b4nkd-backend/internal/audit/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormSystemLogRepository implements SystemLogRepository using GORM
type gormSystemLogRepository struct {
	db *gorm.DB
}

// NewGormSystemLogRepository creates a new GORM-based SystemLogRepository
func NewGormSystemLogRepository(db *gorm.DB) SystemLogRepository {
	return &gormSystemLogRepository{db: db}
}

func (r *gormSystemLogRepository) Create(entry *domain.SystemLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return r.db.Create(entry).Error
}

func (r *gormSystemLogRepository) FindRecent(limit int) ([]*domain.SystemLog, error) {
	var entries []*domain.SystemLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
