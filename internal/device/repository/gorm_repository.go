package repository

import (
	"time"

	"b4nkd-backend/internal/device/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormDeviceTokenRepository implements DeviceTokenRepository using GORM
type gormDeviceTokenRepository struct {
	db *gorm.DB
}

// NewGormDeviceTokenRepository creates a new GORM-based DeviceTokenRepository
func NewGormDeviceTokenRepository(db *gorm.DB) DeviceTokenRepository {
	return &gormDeviceTokenRepository{db: db}
}

func (r *gormDeviceTokenRepository) Create(token *domain.DeviceToken) error {
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	token.CreatedAt = time.Now()
	token.UpdatedAt = time.Now()
	return r.db.Create(token).Error
}

func (r *gormDeviceTokenRepository) FindByToken(token string) (*domain.DeviceToken, error) {
	var record domain.DeviceToken
	err := r.db.Where("token = ?", token).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *gormDeviceTokenRepository) UpdateOwner(id, userID string) error {
	return r.db.Model(&domain.DeviceToken{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"user_id":    userID,
			"updated_at": time.Now(),
		}).Error
}

func (r *gormDeviceTokenRepository) FindAll() ([]*domain.DeviceToken, error) {
	var tokens []*domain.DeviceToken
	err := r.db.Order("created_at DESC").Find(&tokens).Error
	return tokens, err
}

func (r *gormDeviceTokenRepository) FindByOwners(userIDs []string) ([]*domain.DeviceToken, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var tokens []*domain.DeviceToken
	err := r.db.Where("user_id IN ?", userIDs).Find(&tokens).Error
	return tokens, err
}

func (r *gormDeviceTokenRepository) DeleteByTokens(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	return r.db.Where("token IN ?", tokens).Delete(&domain.DeviceToken{}).Error
}

func (r *gormDeviceTokenRepository) DistinctOwners() ([]string, error) {
	var owners []string
	err := r.db.Model(&domain.DeviceToken{}).
		Where("user_id <> ''").
		Distinct("user_id").
		Pluck("user_id", &owners).Error
	return owners, err
}
