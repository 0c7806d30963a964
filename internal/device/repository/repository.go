package repository

import "b4nkd-backend/internal/device/domain"

// DeviceTokenRepository defines the interface for device token persistence
type DeviceTokenRepository interface {
	// Create inserts a new device token
	Create(token *domain.DeviceToken) error

	// FindByToken finds a record by its token value; (nil, nil) when absent
	FindByToken(token string) (*domain.DeviceToken, error)

	// UpdateOwner reassigns an existing token to a new owner
	UpdateOwner(id, userID string) error

	// FindAll returns every registered token, newest first
	FindAll() ([]*domain.DeviceToken, error)

	// FindByOwners returns the tokens owned by the given users
	FindByOwners(userIDs []string) ([]*domain.DeviceToken, error)

	// DeleteByTokens removes the given token values; missing tokens are a no-op
	DeleteByTokens(tokens []string) error

	// DistinctOwners returns the distinct non-empty owner ids
	DistinctOwners() ([]string, error)
}
