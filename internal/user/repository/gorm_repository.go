package repository

import (
	"b4nkd-backend/internal/user/domain"

	"gorm.io/gorm"
)

// gormProfileRepository implements ProfileRepository using GORM
type gormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository
func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) FindByUserIDs(userIDs []string) ([]*domain.UserProfile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []*domain.UserProfile
	err := r.db.Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}
